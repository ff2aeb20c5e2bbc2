package trello

import (
	"context"
	"fmt"
	"net/url"

	"github.com/danielolaszy/trello-cli/pkg/models"
)

// Member types accepted by AddMemberToBoard.
const (
	MemberTypeNormal = "normal"
	MemberTypeAdmin  = "admin"
)

// fields builds the projection parameter limiting the attributes the API returns.
func fields(f string) url.Values {
	return url.Values{"fields": {f}}
}

// GetBoards returns every board the authenticated member can access,
// closed boards included.
func (c *Client) GetBoards(ctx context.Context) ([]models.Board, error) {
	var boards []models.Board
	if err := c.Get(ctx, "/members/me/boards", fields("id,name,url,closed"), &boards); err != nil {
		return nil, err
	}
	return boards, nil
}

// GetBoard returns a single board.
func (c *Client) GetBoard(ctx context.Context, boardID string) (*models.Board, error) {
	var board models.Board
	if err := c.Get(ctx, fmt.Sprintf("/boards/%s", url.PathEscape(boardID)), fields("id,name,url"), &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// GetBoardMembers returns the members of a board.
func (c *Client) GetBoardMembers(ctx context.Context, boardID string) ([]models.Member, error) {
	var members []models.Member
	path := fmt.Sprintf("/boards/%s/members", url.PathEscape(boardID))
	if err := c.Get(ctx, path, fields("id,username,fullName,email"), &members); err != nil {
		return nil, err
	}
	return members, nil
}

// AddMemberToBoard invites a user to a board by email. memberType is
// MemberTypeNormal or MemberTypeAdmin; an empty value means normal.
func (c *Client) AddMemberToBoard(ctx context.Context, boardID, email, memberType string) error {
	if memberType == "" {
		memberType = MemberTypeNormal
	}

	params := url.Values{
		"email": {email},
		"type":  {memberType},
	}
	path := fmt.Sprintf("/boards/%s/members", url.PathEscape(boardID))
	return c.Put(ctx, path, params, nil)
}

// GetBoardLists returns the lists of a board, used to map list IDs to names.
func (c *Client) GetBoardLists(ctx context.Context, boardID string) ([]models.List, error) {
	var lists []models.List
	path := fmt.Sprintf("/boards/%s/lists", url.PathEscape(boardID))
	if err := c.Get(ctx, path, fields("id,name"), &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// GetList returns a single list.
func (c *Client) GetList(ctx context.Context, listID string) (*models.List, error) {
	var list models.List
	if err := c.Get(ctx, fmt.Sprintf("/lists/%s", url.PathEscape(listID)), fields("id,name,idBoard"), &list); err != nil {
		return nil, err
	}
	return &list, nil
}
