package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Category is the closed set of habit categories. The zero value is CategoryHealth.
type Category uint8

const (
	CategoryHealth Category = iota
	CategoryProductivity
	CategoryHygiene
	CategoryExercise
	CategorySleep
	CategoryOther
)

const numCategories = int(CategoryOther) + 1

// AllCategories lists every category in enumeration order.
var AllCategories = []Category{
	CategoryHealth,
	CategoryProductivity,
	CategoryHygiene,
	CategoryExercise,
	CategorySleep,
	CategoryOther,
}

var categoryNames = [numCategories]string{
	"health",
	"productivity",
	"hygiene",
	"exercise",
	"sleep",
	"other",
}

func (c Category) String() string {
	if int(c) >= numCategories {
		return categoryNames[CategoryOther]
	}
	return categoryNames[c]
}

// Index is the position of the category in AllCategories.
func (c Category) Index() int {
	if int(c) >= numCategories {
		return int(CategoryOther)
	}
	return int(c)
}

// ParseCategory never fails: unknown input maps to CategoryOther.
func ParseCategory(s string) Category {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range categoryNames {
		if name == s {
			return Category(i)
		}
	}
	return CategoryOther
}

// CategoryNames returns the wire names of AllCategories.
func CategoryNames() []string {
	names := make([]string, 0, numCategories)
	for _, c := range AllCategories {
		names = append(names, c.String())
	}
	return names
}

func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(text []byte) error {
	*c = ParseCategory(string(text))
	return nil
}

func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

func (c *Category) Scan(src any) error {
	switch v := src.(type) {
	case string:
		*c = ParseCategory(v)
	case []byte:
		*c = ParseCategory(string(v))
	case nil:
		*c = CategoryOther
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}
	return nil
}
