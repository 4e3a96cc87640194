package model

import (
	"fmt"
	"strings"
)

// Category is the closed set of room kinds the hotel rents.
type Category string

const (
	Simple Category = "simple"
	Double Category = "double"
	Suite  Category = "suite"
)

// Categories lists every category in display order.
var Categories = []Category{Simple, Double, Suite}

var categoryAliases = map[string]Category{
	"simple": Simple,
	"single": Simple,
	"double": Double,
	"doble":  Double,
	"suite":  Suite,
}

// ParseCategory accepts any case and the aliases used at the front desk.
func ParseCategory(s string) (Category, error) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("unknown room category %q", s)
	}
	return c, nil
}

func (c Category) Valid() bool {
	switch c {
	case Simple, Double, Suite:
		return true
	}
	return false
}

func (c Category) String() string {
	switch c {
	case Simple:
		return "Simple"
	case Double:
		return "Double"
	case Suite:
		return "Suite"
	}
	return string(c)
}
