package tui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dbmrq/officedesk/internal/crm"
	"github.com/dbmrq/officedesk/internal/errors"
	"github.com/dbmrq/officedesk/internal/rbac"
	"github.com/dbmrq/officedesk/internal/tui/components"
	"github.com/dbmrq/officedesk/internal/tui/styles"
)

// Screens builds the full screen spec set, in menu order. The shell
// instantiates controllers only for the screens the role may view.
func Screens() map[rbac.Screen]ScreenSpec {
	return map[rbac.Screen]ScreenSpec{
		rbac.ScreenOffices:   officesScreen(),
		rbac.ScreenBookings:  bookingsScreen(),
		rbac.ScreenContracts: contractsScreen(),
		rbac.ScreenPayments:  paymentsScreen(),
		rbac.ScreenRequests:  requestsScreen(),
		rbac.ScreenTenants:   tenantsScreen(),
	}
}

// statusCell renders a record status in its semantic color.
func statusCell(status string) string {
	switch status {
	case string(crm.OfficeVacant), string(crm.PaymentPaid),
		string(crm.RequestDone), string(crm.ContractActive):
		return styles.StatusGood.Render(status)
	case string(crm.OfficeOccupied), string(crm.PaymentOverdue),
		string(crm.ContractTerminated):
		return styles.StatusBad.Render(status)
	default:
		return styles.StatusNeutral.Render(status)
	}
}

// intField parses a numeric form value. The label is what the user saw
// next to the input, so the inline message reads naturally.
func intField(values map[string]string, id, label string) (int, error) {
	n, err := strconv.Atoi(values[id])
	if err != nil {
		return 0, errors.InvalidField(label, "must be a whole number")
	}
	return n, nil
}

func officesScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenOffices,
		Title:     "Offices",
		EmptyText: "No offices yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Address", Width: 28},
			{Title: "Area m²", Width: 8},
			{Title: "Rooms", Width: 6},
			{Title: "Rent", Width: 10},
			{Title: "Status", Width: 10},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			offices, err := client.ListOffices(ctx)
			if err != nil {
				return LoadResult{Err: err}
			}
			rows := make([]Row, len(offices))
			for i, o := range offices {
				rows[i] = Row{
					ID: o.ID,
					Cells: []string{
						strconv.Itoa(o.ID),
						o.Address,
						strconv.Itoa(o.Area),
						strconv.Itoa(o.Rooms),
						strconv.Itoa(o.Rent),
						statusCell(string(o.Status)),
					},
					Ref: o,
				}
			}
			return LoadResult{Rows: rows}
		},
		FormFields: func(mode FormMode, row *Row, _ map[string][]components.Option) []components.FormField {
			address := components.NewTextInput("address", "Address")
			area := components.NewTextInput("area", "Area m²")
			rooms := components.NewTextInput("rooms", "Rooms")
			rent := components.NewTextInput("rent", "Rent")
			status := components.NewSelectField("status", "Status", []components.Option{
				{Label: "vacant", Value: string(crm.OfficeVacant)},
				{Label: "occupied", Value: string(crm.OfficeOccupied)},
			})
			if mode == FormEdit && row != nil {
				if office, ok := row.Ref.(crm.Office); ok {
					address.SetValue(office.Address)
					area.SetValue(strconv.Itoa(office.Area))
					rooms.SetValue(strconv.Itoa(office.Rooms))
					rent.SetValue(strconv.Itoa(office.Rent))
					status.SetValue(string(office.Status))
				}
			}
			return []components.FormField{address, area, rooms, rent, status}
		},
		Required: []string{"address", "area", "rooms", "rent"},
		Submit: func(ctx context.Context, client *crm.Client, mode FormMode, id int, values map[string]string) error {
			area, err := intField(values, "area", "Area")
			if err != nil {
				return err
			}
			rooms, err := intField(values, "rooms", "Rooms")
			if err != nil {
				return err
			}
			rent, err := intField(values, "rent", "Rent")
			if err != nil {
				return err
			}
			input := crm.OfficeInput{
				Address: values["address"],
				Area:    area,
				Rooms:   rooms,
				Rent:    rent,
				Status:  crm.OfficeStatus(values["status"]),
			}
			if mode == FormEdit {
				return client.UpdateOffice(ctx, id, input)
			}
			return client.CreateOffice(ctx, input)
		},
		Delete: func(ctx context.Context, client *crm.Client, id int) error {
			return client.DeleteOffice(ctx, id)
		},
		ConfirmDelete: func(row Row) string {
			if office, ok := row.Ref.(crm.Office); ok {
				return fmt.Sprintf("Delete office #%d at %q?", office.ID, office.Address)
			}
			return fmt.Sprintf("Delete office #%d?", row.ID)
		},
	}
}

func bookingsScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenBookings,
		Title:     "Bookings",
		EmptyText: "No bookings yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Office", Width: 28},
			{Title: "From", Width: 12},
			{Title: "To", Width: 12},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			joined := crm.FetchBoth(ctx, client.ListBookings, client.ListOffices)
			if joined.PrimaryErr != nil {
				return LoadResult{Err: joined.PrimaryErr}
			}
			// A failed office load degrades labels to bare IDs instead
			// of failing the whole screen.
			addresses := make(map[int]string, len(joined.Secondary))
			for _, o := range joined.Secondary {
				addresses[o.ID] = o.Address
			}
			rows := make([]Row, len(joined.Primary))
			for i, b := range joined.Primary {
				rows[i] = Row{
					ID: b.ID,
					Cells: []string{
						strconv.Itoa(b.ID),
						officeLabel(b.OfficeID, addresses),
						b.StartDate,
						b.EndDate,
					},
					Ref: b,
				}
			}
			return LoadResult{
				Rows:    rows,
				Options: map[string][]components.Option{"office_id": officeOptions(joined.Secondary)},
			}
		},
		FormFields: func(_ FormMode, _ *Row, options map[string][]components.Option) []components.FormField {
			office := components.NewSelectField("office_id", "Office", options["office_id"])
			start := components.NewTextInput("start_date", "From")
			start.SetPlaceholder("YYYY-MM-DD")
			end := components.NewTextInput("end_date", "To")
			end.SetPlaceholder("YYYY-MM-DD")
			return []components.FormField{office, start, end}
		},
		Required: []string{"office_id", "start_date", "end_date"},
		Submit: func(ctx context.Context, client *crm.Client, _ FormMode, _ int, values map[string]string) error {
			officeID, err := intField(values, "office_id", "Office")
			if err != nil {
				return err
			}
			return client.CreateBooking(ctx, crm.BookingInput{
				OfficeID:  officeID,
				StartDate: values["start_date"],
				EndDate:   values["end_date"],
			})
		},
		Delete: func(ctx context.Context, client *crm.Client, id int) error {
			return client.DeleteBooking(ctx, id)
		},
		ConfirmDelete: func(row Row) string {
			if b, ok := row.Ref.(crm.Booking); ok {
				return fmt.Sprintf("Cancel booking #%d (%s to %s)?", b.ID, b.StartDate, b.EndDate)
			}
			return fmt.Sprintf("Cancel booking #%d?", row.ID)
		},
	}
}

func contractsScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenContracts,
		Title:     "Contracts",
		EmptyText: "No contracts yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Office", Width: 24},
			{Title: "Status", Width: 12},
			{Title: "From", Width: 12},
			{Title: "To", Width: 12},
			{Title: "Cost", Width: 10},
			{Title: "Deposit", Width: 10},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			joined := crm.FetchBoth(ctx, client.ListContracts, client.ListOffices)
			if joined.PrimaryErr != nil {
				return LoadResult{Err: joined.PrimaryErr}
			}
			addresses := make(map[int]string, len(joined.Secondary))
			for _, o := range joined.Secondary {
				addresses[o.ID] = o.Address
			}
			rows := make([]Row, len(joined.Primary))
			for i, c := range joined.Primary {
				rows[i] = Row{
					ID: c.ID,
					Cells: []string{
						strconv.Itoa(c.ID),
						officeLabel(c.OfficeID, addresses),
						statusCell(string(c.Status)),
						c.StartDate,
						c.EndDate,
						strconv.Itoa(c.Cost),
						strconv.Itoa(c.Deposit),
					},
					Ref: c,
				}
			}
			return LoadResult{Rows: rows}
		},
	}
}

func paymentsScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenPayments,
		Title:     "Payments",
		EmptyText: "No payments yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Contract", Width: 12},
			{Title: "Amount", Width: 10},
			{Title: "Date", Width: 12},
			{Title: "Status", Width: 10},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			joined := crm.FetchBoth(ctx, client.ListPayments, client.ListContracts)
			if joined.PrimaryErr != nil {
				return LoadResult{Err: joined.PrimaryErr}
			}
			rows := make([]Row, len(joined.Primary))
			for i, p := range joined.Primary {
				rows[i] = Row{
					ID: p.ID,
					Cells: []string{
						strconv.Itoa(p.ID),
						fmt.Sprintf("#%d", p.ContractID),
						strconv.Itoa(p.Amount),
						p.PaymentDate,
						statusCell(string(p.Status)),
					},
					Ref: p,
				}
			}
			return LoadResult{
				Rows:    rows,
				Options: map[string][]components.Option{"contract_id": contractOptions(joined.Secondary)},
			}
		},
		FormFields: func(_ FormMode, _ *Row, options map[string][]components.Option) []components.FormField {
			contract := components.NewSelectField("contract_id", "Contract", options["contract_id"])
			amount := components.NewTextInput("amount", "Amount")
			date := components.NewTextInput("payment_date", "Date")
			date.SetPlaceholder("YYYY-MM-DD")
			// Overdue is deliberately absent: only the server-side
			// sweep ever produces it.
			status := components.NewSelectField("status", "Status", []components.Option{
				{Label: "unpaid", Value: string(crm.PaymentUnpaid)},
				{Label: "paid", Value: string(crm.PaymentPaid)},
			})
			return []components.FormField{contract, amount, date, status}
		},
		Required: []string{"contract_id", "amount", "payment_date"},
		Submit: func(ctx context.Context, client *crm.Client, _ FormMode, _ int, values map[string]string) error {
			contractID, err := intField(values, "contract_id", "Contract")
			if err != nil {
				return err
			}
			amount, err := intField(values, "amount", "Amount")
			if err != nil {
				return err
			}
			return client.CreatePayment(ctx, crm.PaymentInput{
				ContractID:  contractID,
				Amount:      amount,
				PaymentDate: values["payment_date"],
				Status:      crm.PaymentStatus(values["status"]),
			})
		},
		Sweep: func(ctx context.Context, client *crm.Client) (string, error) {
			return client.CheckOverduePayments(ctx)
		},
	}
}

func requestsScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenRequests,
		Title:     "Requests",
		EmptyText: "No requests yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Contract", Width: 10},
			{Title: "Type", Width: 14},
			{Title: "Description", Width: 28},
			{Title: "Status", Width: 12},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			joined := crm.FetchBoth(ctx, client.ListRequests, client.ListContracts)
			if joined.PrimaryErr != nil {
				return LoadResult{Err: joined.PrimaryErr}
			}
			rows := make([]Row, len(joined.Primary))
			for i, r := range joined.Primary {
				rows[i] = Row{
					ID: r.ID,
					Cells: []string{
						strconv.Itoa(r.ID),
						fmt.Sprintf("#%d", r.ContractID),
						r.Type,
						r.Description,
						statusCell(string(r.Status)),
					},
					Ref: r,
				}
			}
			return LoadResult{
				Rows:    rows,
				Options: map[string][]components.Option{"contract_id": contractOptions(joined.Secondary)},
			}
		},
		FormFields: func(_ FormMode, _ *Row, options map[string][]components.Option) []components.FormField {
			contract := components.NewSelectField("contract_id", "Contract", options["contract_id"])
			reqType := components.NewTextInput("type", "Type")
			reqType.SetPlaceholder("repair, cleaning…")
			description := components.NewTextInput("description", "Description")
			return []components.FormField{contract, reqType, description}
		},
		Required: []string{"contract_id", "type", "description"},
		Submit: func(ctx context.Context, client *crm.Client, _ FormMode, _ int, values map[string]string) error {
			contractID, err := intField(values, "contract_id", "Contract")
			if err != nil {
				return err
			}
			return client.CreateRequest(ctx, crm.RequestInput{
				ContractID:  contractID,
				Type:        values["type"],
				Description: values["description"],
			})
		},
		Delete: func(ctx context.Context, client *crm.Client, id int) error {
			return client.DeleteRequest(ctx, id)
		},
		ConfirmDelete: func(row Row) string {
			if r, ok := row.Ref.(crm.Request); ok {
				return fmt.Sprintf("Delete request #%d (%s)?", r.ID, r.Type)
			}
			return fmt.Sprintf("Delete request #%d?", row.ID)
		},
		Advance: func(ctx context.Context, client *crm.Client, row Row) error {
			request, ok := row.Ref.(crm.Request)
			if !ok {
				return errors.InvalidField("request", "no record selected")
			}
			next, ok := request.Status.Next()
			if !ok {
				return nil
			}
			return client.UpdateRequestStatus(ctx, request.ID, next)
		},
		CanAdvance: func(row Row) bool {
			request, ok := row.Ref.(crm.Request)
			if !ok {
				return false
			}
			_, ok = request.Status.Next()
			return ok
		},
	}
}

func tenantsScreen() ScreenSpec {
	return ScreenSpec{
		ID:        rbac.ScreenTenants,
		Title:     "Tenants",
		EmptyText: "No tenants yet",
		Columns: []components.Column{
			{Title: "ID", Width: 4},
			{Title: "Company", Width: 24},
			{Title: "Contact", Width: 20},
			{Title: "Phone", Width: 16},
			{Title: "Email", Width: 22},
		},
		Load: func(ctx context.Context, client *crm.Client) LoadResult {
			tenants, err := client.ListTenants(ctx)
			if err != nil {
				return LoadResult{Err: err}
			}
			rows := make([]Row, len(tenants))
			for i, t := range tenants {
				rows[i] = Row{
					ID: t.ID,
					Cells: []string{
						strconv.Itoa(t.ID),
						t.CompanyName,
						t.ContactPerson,
						t.Phone,
						t.Email,
					},
					Ref: t,
				}
			}
			return LoadResult{Rows: rows}
		},
	}
}

// officeLabel renders an office reference, with the address when known.
func officeLabel(officeID int, addresses map[int]string) string {
	if address, ok := addresses[officeID]; ok {
		return fmt.Sprintf("#%d %s", officeID, address)
	}
	return fmt.Sprintf("#%d", officeID)
}

// officeOptions builds the office select options for booking forms.
func officeOptions(offices []crm.Office) []components.Option {
	options := make([]components.Option, len(offices))
	for i, o := range offices {
		options[i] = components.Option{
			Label: fmt.Sprintf("#%d %s", o.ID, o.Address),
			Value: strconv.Itoa(o.ID),
		}
	}
	return options
}

// contractOptions builds the contract select options for payment and
// request forms.
func contractOptions(contracts []crm.Contract) []components.Option {
	options := make([]components.Option, len(contracts))
	for i, c := range contracts {
		options[i] = components.Option{
			Label: fmt.Sprintf("#%d office %d (%s)", c.ID, c.OfficeID, c.Status),
			Value: strconv.Itoa(c.ID),
		}
	}
	return options
}
