package trello

import (
	"context"
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"

	"github.com/danielolaszy/trello-cli/pkg/models"
)

// CreateCardOptions holds the optional attributes of a new card.
// Empty fields are not sent.
type CreateCardOptions struct {
	Desc string `url:"desc,omitempty"`

	// Due is an ISO date (YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss)
	Due string `url:"due,omitempty"`

	// Pos is "top", "bottom" or a positive number
	Pos string `url:"pos,omitempty"`
}

// UpdateCardOptions holds the attributes to change on a card.
// A nil field is left unchanged; a non-nil field is sent even when it points
// to an empty string, which clears Desc or Due.
type UpdateCardOptions struct {
	Name   *string `url:"name,omitempty"`
	Desc   *string `url:"desc,omitempty"`
	Due    *string `url:"due,omitempty"`
	IDList *string `url:"idList,omitempty"`
	Pos    *string `url:"pos,omitempty"`
	Closed *bool   `url:"closed,omitempty"`
}

// IsEmpty reports whether no field is set.
func (o UpdateCardOptions) IsEmpty() bool {
	return o.Name == nil && o.Desc == nil && o.Due == nil &&
		o.IDList == nil && o.Pos == nil && o.Closed == nil
}

type cardDetailQuery struct {
	Fields       string `url:"fields"`
	Members      bool   `url:"members"`
	MemberFields string `url:"member_fields"`
	Labels       bool   `url:"labels"`
	Attachments  bool   `url:"attachments"`
	Checklists   string `url:"checklists"`
}

var cardDetailProjection = cardDetailQuery{
	Fields:       "id,name,desc,due,idList,idBoard,url,closed,dateLastActivity",
	Members:      true,
	MemberFields: "id,username,fullName",
	Labels:       true,
	Attachments:  true,
	Checklists:   "all",
}

// GetBoardCards returns all cards of a board, closed cards included.
func (c *Client) GetBoardCards(ctx context.Context, boardID string) ([]models.Card, error) {
	var cards []models.Card
	path := fmt.Sprintf("/boards/%s/cards", url.PathEscape(boardID))
	if err := c.Get(ctx, path, fields("id,name,desc,due,idList,url,closed"), &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCardDetails returns a card with its members, labels, attachments and
// checklists.
func (c *Client) GetCardDetails(ctx context.Context, cardID string) (*models.Card, error) {
	params, err := query.Values(cardDetailProjection)
	if err != nil {
		return nil, fmt.Errorf("failed to encode card query: %w", err)
	}

	var card models.Card
	if err := c.Get(ctx, fmt.Sprintf("/cards/%s", url.PathEscape(cardID)), params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// CreateCard creates a card named name at the bottom (or opts.Pos) of a list.
func (c *Client) CreateCard(ctx context.Context, listID, name string, opts CreateCardOptions) (*models.Card, error) {
	params, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode card options: %w", err)
	}
	params.Set("idList", listID)
	params.Set("name", name)

	var card models.Card
	if err := c.Post(ctx, "/cards", params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// UpdateCard applies a partial update to a card. Only the fields set in
// opts are sent.
func (c *Client) UpdateCard(ctx context.Context, cardID string, opts UpdateCardOptions) (*models.Card, error) {
	params, err := query.Values(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to encode card options: %w", err)
	}

	var card models.Card
	if err := c.Put(ctx, fmt.Sprintf("/cards/%s", url.PathEscape(cardID)), params, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
