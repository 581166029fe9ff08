// Package viewmodels holds the flat JSON shapes returned by the CRM API.
// Every field is a string so clients render values verbatim; parsing and
// formatting stay on the server.
package viewmodels

type Lead struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Source    string `json:"source"`
	Status    string `json:"status"`
	OwnerID   string `json:"owner_id"`
	OwnerName string `json:"owner_name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type Contact struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	JobTitle    string `json:"job_title"`
	AccountName string `json:"account_name"`
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type Account struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Industry  string   `json:"industry"`
	Website   string   `json:"website"`
	Phone     string   `json:"phone"`
	Tags      []string `json:"tags"`
	OwnerID   string   `json:"owner_id"`
	OwnerName string   `json:"owner_name"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
}

// Meeting carries the effective status in Status; the stored value is only
// exposed separately so clients can tell an explicit cancellation apart.
type Meeting struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Status       string `json:"status"`
	StoredStatus string `json:"stored_status"`
	Location     string `json:"location"`
	Notes        string `json:"notes"`
	AccountName  string `json:"account_name"`
	OwnerID      string `json:"owner_id"`
	OwnerName    string `json:"owner_name"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	DueDate     string `json:"due_date"`
	OwnerID     string `json:"owner_id"`
	OwnerName   string `json:"owner_name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}
