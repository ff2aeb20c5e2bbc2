// Package models defines the Trello entities shared across the application.
//
// All entities are transient response shapes: they are decoded from an API
// response, consumed by a command, and discarded.
package models

// Board represents a Trello board.
type Board struct {
	// ID is the board's identifier (e.g., "5f1b2c...")
	ID string `json:"id"`

	// Name is the board's display name
	Name string `json:"name"`

	// URL is the board's web address
	URL string `json:"url,omitempty"`

	// Closed is true for archived boards
	Closed bool `json:"closed"`
}

// List represents a named column within a board.
type List struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	IDBoard string `json:"idBoard,omitempty"`
}

// Member represents a user account associated with a board.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName"`

	// Email is only returned when the API's visibility rules allow it
	Email string `json:"email,omitempty"`
}

// Label is a colored tag attached to a card.
type Label struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Attachment is a file or link attached to a card.
type Attachment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CheckItem is a single entry of a checklist.
type CheckItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	// State is "complete" or "incomplete"
	State string `json:"state"`
}

// Checklist is a named sub-list of check items attached to a card.
type Checklist struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	CheckItems []CheckItem `json:"checkItems"`
}

// Card represents a Trello card, the unit of work within a list.
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	IDList string `json:"idList"`

	// IDBoard is only populated by the card detail projection
	IDBoard string `json:"idBoard,omitempty"`
	URL     string `json:"url"`
	Closed  bool   `json:"closed"`

	// Due is an ISO-8601 timestamp, or empty when the card has no due date
	Due string `json:"due"`

	// DateLastActivity is an ISO-8601 timestamp of the last change to the card
	DateLastActivity string `json:"dateLastActivity,omitempty"`

	Members     []Member     `json:"members,omitempty"`
	Labels      []Label      `json:"labels,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Checklists  []Checklist  `json:"checklists,omitempty"`
}
