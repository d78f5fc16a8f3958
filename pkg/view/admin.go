package view

// AdminDraft mirrors the editing session for the form template.
type AdminDraft struct {
	EditMode      bool
	EditingID     string
	Name          string
	Price         string
	Description   string
	PendingImages []string
	Uploading     bool
}

// AdminProductRow is one entry in the "Current Products" list.
type AdminProductRow struct {
	ID         string
	Name       string
	Price      string
	ImageURL   string
	ImageCount int
}

type AdminPage struct {
	Title    string
	Email    string
	Draft    AdminDraft
	Products []AdminProductRow
	Flash    *Flash
}

// AdminConfirmPage asks before the irreversible product delete.
type AdminConfirmPage struct {
	Title string
	ID    string
	Name  string
	Flash *Flash
}
