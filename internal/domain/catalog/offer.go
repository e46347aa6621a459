package catalog

import (
	"errors"
	"strings"
)

var (
	ErrMissingTitle        = errors.New("offer title is required")
	ErrInvalidDiscountType = errors.New("discount type must be percentage or fixed")
	ErrInvalidDiscountCode = errors.New("discount code is required")
	ErrInvalidValue        = errors.New("discount value out of range")
)

type Offer struct {
	category    string
	title       string
	description string
	price       string
	features    []string
	duration    string
	imageURL    string
	questions   []string
}

func NewOffer(category, title, description, price, duration, imageURL string, features, questions []string) (*Offer, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrMissingTitle
	}
	return &Offer{
		category:    strings.TrimSpace(category),
		title:       title,
		description: description,
		price:       strings.TrimSpace(price),
		features:    compact(features),
		duration:    strings.TrimSpace(duration),
		imageURL:    strings.TrimSpace(imageURL),
		questions:   compact(questions),
	}, nil
}

func (o *Offer) Category() string    { return o.category }
func (o *Offer) Title() string       { return o.title }
func (o *Offer) Description() string { return o.description }
func (o *Offer) Price() string       { return o.price }
func (o *Offer) Features() []string  { return o.features }
func (o *Offer) Duration() string    { return o.duration }
func (o *Offer) ImageURL() string    { return o.imageURL }
func (o *Offer) Questions() []string { return o.questions }

// compact drops blank entries and keeps order.
func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
