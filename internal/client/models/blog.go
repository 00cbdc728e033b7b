package models

type BlogImage struct {
	ID           int    `json:"id"`
	RelativePath string `json:"relative_path"`
	ImageURL     string `json:"image_url"`
}

type BlogAuthor struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
}

type Blog struct {
	ID        int         `json:"id"`
	Title     string      `json:"title"`
	Content   string      `json:"content"`
	CreatedBy BlogAuthor  `json:"created_by"`
	Author    string      `json:"createdBy"`
	CreatedAt string      `json:"createdAt"`
	UpdatedAt string      `json:"updatedAt"`
	Images    []BlogImage `json:"images"`
}

// InlineImage is the result of an inline image upload.
type InlineImage struct {
	ID         int    `json:"id"`
	Image      string `json:"image"`
	UploadedAt string `json:"uploaded_at"`
}
