package model

type Category struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Slug        string  `db:"slug" json:"slug"`
	Description *string `db:"description" json:"description"`
	ParentID    *int64  `db:"parent_id" json:"parentId"`
}

func (c *Category) Clone() *Category {
	out := *c
	return &out
}

type CreateCategory struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Slug        string  `json:"slug" validate:"required,slug"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId" validate:"omitempty,gt=0"`
}

type CategoryPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Slug        *string `json:"slug" validate:"omitempty,slug"`
	Description *string `json:"description"`
	ParentID    *int64  `json:"parentId" validate:"omitempty,gt=0"`
}

func (p *CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Slug != nil {
		c.Slug = *p.Slug
	}
	if p.Description != nil {
		d := *p.Description
		c.Description = &d
	}
	if p.ParentID != nil {
		id := *p.ParentID
		c.ParentID = &id
	}
}
