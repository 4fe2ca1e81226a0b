// Package hateoas holds the link primitives attached to API representations.
package hateoas

import (
	"strconv"
	"strings"
)

const RelSelf = "self"

type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

type Links []Link

// Self returns the self href, or "" when the representation has none.
func (l Links) Self() string {
	return l.Find(RelSelf)
}

func (l Links) Find(rel string) string {
	for _, link := range l {
		if link.Rel == rel {
			return link.Href
		}
	}
	return ""
}

// Builder resolves resource paths against the public base URL. An empty base
// yields relative URIs.
type Builder struct {
	base string
}

func NewBuilder(baseURL string) Builder {
	return Builder{base: strings.TrimRight(baseURL, "/")}
}

func (b Builder) Collection(resource string) string {
	return b.base + "/" + strings.Trim(resource, "/")
}

func (b Builder) Item(resource string, id int64) string {
	return b.Collection(resource) + "/" + strconv.FormatInt(id, 10)
}
