package models

// Country is an admin-managed content record used for international listings.
type Country struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	ImageURL    string `json:"image_url,omitempty"`
	Description string `json:"description,omitempty"`
}

// GalleryImage is a plain admin-managed gallery entry.
type GalleryImage struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
}

// PageContent stores editable copy for static pages keyed by slug.
type PageContent struct {
	ID    int64  `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ContactQuery is a message submitted through the contact form.
type ContactQuery struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at,omitempty"`
}
