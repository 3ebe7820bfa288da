package models

import "time"

// Review is one guest's rating and comment, embedded in its owning room's
// reviews column. Reviews are append-only.
type Review struct {
	Name    string    `json:"name"`
	Rating  float64   `json:"rating"`
	Comment string    `json:"comment"`
	Date    time.Time `json:"date"`
}
