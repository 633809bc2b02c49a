package entity

type Category struct {
	ID        string `db:"id"` // slug, e.g. "coffee"
	Name      string `db:"name"`
	SortOrder int    `db:"sort_order"`
}

type ModifierType string

const (
	ModifierSize  ModifierType = "size"
	ModifierMilk  ModifierType = "milk"
	ModifierSyrup ModifierType = "syrup"
)

type Modifier struct {
	ID        int64        `db:"id"`
	ProductID int64        `db:"product_id"`
	Type      ModifierType `db:"modifier_type"`
	Name      string       `db:"name"`
	Price     int          `db:"price"`
}

type Product struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Price       int    `db:"price"`
	ImageURL    string `db:"image_url"`
	CategoryID  string `db:"category_id"`
	SortOrder   int    `db:"sort_order"`

	Modifiers []Modifier
}
