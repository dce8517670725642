// Package crm defines the office-leasing CRM records exchanged with the
// remote service and the REST client that fetches them. Records are
// plain data: the client does not validate or transform their shape,
// the server owns all business rules.
package crm

// Role is the closed set of user roles known to the client.
type Role string

const (
	// RoleAdmin manages offices and sees every screen.
	RoleAdmin Role = "admin"
	// RoleTenant books offices, files payments and requests.
	RoleTenant Role = "tenant"
	// RoleStaff works maintenance requests and runs the overdue sweep.
	RoleStaff Role = "staff"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTenant, RoleStaff:
		return true
	}
	return false
}

// OfficeStatus is the occupancy status of an office.
type OfficeStatus string

const (
	OfficeVacant   OfficeStatus = "vacant"
	OfficeOccupied OfficeStatus = "occupied"
)

// ContractStatus is the lifecycle state of a contract. Transitions are
// fully server-managed; the client only displays them.
type ContractStatus string

const (
	ContractActive     ContractStatus = "active"
	ContractCompleted  ContractStatus = "completed"
	ContractTerminated ContractStatus = "terminated"
)

// PaymentStatus is the settlement state of a payment. The overdue state
// is only ever produced by the server-side sweep, never by direct edit.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

// RequestStatus is the workflow state of a maintenance request.
type RequestStatus string

const (
	RequestNew        RequestStatus = "new"
	RequestInProgress RequestStatus = "in_progress"
	RequestDone       RequestStatus = "done"
)

// Next returns the status one step forward and whether a step exists.
// The workflow only moves forward, one step at a time.
func (s RequestStatus) Next() (RequestStatus, bool) {
	switch s {
	case RequestNew:
		return RequestInProgress, true
	case RequestInProgress:
		return RequestDone, true
	}
	return s, false
}

// Office is a rentable office unit. Mutated only by admins.
type Office struct {
	ID      int          `json:"id"`
	Address string       `json:"address"`
	Area    int          `json:"area"`
	Rooms   int          `json:"rooms"`
	Rent    int          `json:"rent"`
	Status  OfficeStatus `json:"status"`
}

// OfficeInput is the payload for creating or updating an office.
type OfficeInput struct {
	Address string       `json:"address"`
	Area    int          `json:"area"`
	Rooms   int          `json:"rooms"`
	Rent    int          `json:"rent"`
	Status  OfficeStatus `json:"status"`
}

// Booking reserves an office for a date range. Dates travel as
// YYYY-MM-DD strings and are not interpreted client-side.
type Booking struct {
	ID        int    `json:"id"`
	OfficeID  int    `json:"office_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// BookingInput is the payload for creating a booking. Overlap checks
// are the server's responsibility.
type BookingInput struct {
	OfficeID  int    `json:"office_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Contract is a lease contract. Read-only in this client.
type Contract struct {
	ID        int            `json:"id"`
	OfficeID  int            `json:"office_id"`
	Status    ContractStatus `json:"status"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Cost      int            `json:"cost"`
	Deposit   int            `json:"deposit"`
}

// Payment is a rent payment against a contract.
type Payment struct {
	ID          int           `json:"id"`
	ContractID  int           `json:"contract_id"`
	Amount      int           `json:"amount"`
	PaymentDate string        `json:"payment_date"`
	Status      PaymentStatus `json:"status"`
}

// PaymentInput is the payload for creating a payment.
type PaymentInput struct {
	ContractID  int           `json:"contract_id"`
	Amount      int           `json:"amount"`
	PaymentDate string        `json:"payment_date"`
	Status      PaymentStatus `json:"status"`
}

// Request is a maintenance or service ticket against a contract.
type Request struct {
	ID          int           `json:"id"`
	ContractID  int           `json:"contract_id"`
	Type        string        `json:"type"`
	Description string        `json:"description"`
	Status      RequestStatus `json:"status"`
	CreatedAt   string        `json:"created_at"`
}

// RequestInput is the payload for creating a request.
type RequestInput struct {
	ContractID  int    `json:"contract_id"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// RequestStatusUpdate advances a request's workflow status.
type RequestStatusUpdate struct {
	Status RequestStatus `json:"status"`
}

// Tenant is a renting company. Read-only in this client.
type Tenant struct {
	ID            int    `json:"id"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
	Phone         string `json:"phone"`
	Email         string `json:"email,omitempty"`
}

// RegisterProfile is the payload for creating a new account.
type RegisterProfile struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`
}

// User is the authenticated identity returned by the server.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// LoginResult is the response to a credential exchange.
type LoginResult struct {
	AccessToken string `json:"access_token"`
	UserID      int    `json:"user_id"`
	UserRole    Role   `json:"user_role"`
}

// RegisterResult is the response to account creation.
type RegisterResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}
