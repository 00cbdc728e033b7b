package forms

// Blog is the write/edit form. Body is Markdown; Cover an optional image.
type Blog struct {
	Title string `label:"title" validate:"required,max=255"`
	Body  string `label:"content" validate:"required"`
	Cover string `label:"cover image" validate:"omitempty,file"`
}

func (b Blog) Validate() error {
	return check(b)
}
