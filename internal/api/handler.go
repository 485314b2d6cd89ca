package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/tundex/billtracker/internal/entity"
)

// @title Bill Tracker API
// @version 1.0
// @description API for tracking bills between users and their creditors and the payments that settle them
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=../mocks/handler.go -package=mocks

type Service interface {
	CreateBill(ctx context.Context, userID, creditorID uuid.UUID, totalCredit, totalPaid decimal.Decimal, description string) (entity.Bill, error)
	Bill(ctx context.Context, id uuid.UUID) (entity.Bill, error)
	Bills(ctx context.Context, userID uuid.UUID, f entity.BillFilter) ([]entity.Bill, int, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error
	CreatePayment(ctx context.Context, billID uuid.UUID, issuer entity.Issuer, amount decimal.Decimal, note string) (entity.Payment, error)
	Payments(ctx context.Context, userID uuid.UUID) ([]entity.Payment, error)
	BillPayments(ctx context.Context, billID uuid.UUID) ([]entity.Payment, error)
	CreateCreditor(ctx context.Context, c entity.Creditor) (entity.Creditor, error)
	Creditor(ctx context.Context, id uuid.UUID) (entity.Creditor, error)
	FindCreditor(ctx context.Context, phone, name, email string) (entity.Creditor, error)
	Creditors(ctx context.Context, limit, offset uint64) ([]entity.Creditor, error)
	UpdateCreditor(ctx context.Context, id uuid.UUID, patch entity.CreditorPatch) (entity.Creditor, error)
}

type Handler struct {
	s Service
}

func NewHandler(s Service) *Handler {
	return &Handler{s: s}
}

type CreateBillRequest struct {
	UserID            uuid.UUID       `json:"userId"`
	CreditorID        uuid.UUID       `json:"creditorId"`
	Description       string          `json:"description"`
	TotalCreditAmount decimal.Decimal `json:"totalCreditAmount"`
	TotalPaidAmount   decimal.Decimal `json:"totalPaidAmount"`
}

type BillEntity struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	CreditorID        string    `json:"creditorId"`
	Description       string    `json:"description"`
	TotalCreditAmount string    `json:"totalCreditAmount"`
	TotalPaidAmount   string    `json:"totalPaidAmount"`
	CurrentBalance    string    `json:"currentBalance"`
	Paid              bool      `json:"paid"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CreateBill opens a bill between a user and a creditor
// @Summary Create bill
// @Description Opens a bill tracking the debt between a user and a creditor
// @Tags bills
// @Accept json
// @Produce json
// @Param CreateBillRequest body CreateBillRequest true "Bill creation request"
// @Success 201 {object} BillEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "User or creditor not found"
// @Failure 409 {object} ErrorResponse "Bill already exists for this user and creditor"
// @Failure 422 {object} ErrorResponse "Invalid amount"
// @Failure 500 {object} ErrorResponse "Failed to create bill"
// @Router /bills [post]
// @Security BearerAuth
func (h *Handler) CreateBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateBillRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	userID := req.UserID
	if userID.IsNil() {
		caller, err := entity.UserFromCtx(ctx)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
			return
		}

		userID = caller.ID
	}

	bill, err := h.s.CreateBill(ctx, userID, req.CreditorID, req.TotalCreditAmount, req.TotalPaidAmount, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "User not found")
		case errors.Is(err, entity.ErrCreditorNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Creditor not found")
		case errors.Is(err, entity.ErrDuplicateBill):
			SendJSONErr(ctx, w, http.StatusConflict, err, "A bill already exists for this user and creditor")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid amount")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create bill")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, billToAPI(bill))
}

type BillsResponse struct {
	Bills      []BillEntity `json:"bills"`
	TotalCount int          `json:"totalCount"`
}

// Bills retrieves bills of a user with optional filters
// @Summary List bills
// @Description Lists bills for the authenticated user, or for another user when called by staff
// @Tags bills
// @Accept json
// @Produce json
// @Param userId query string false "User to list bills for (staff only, defaults to caller)"
// @Param paid query bool false "Filter by settlement state"
// @Param limit query int false "Page size (default 100)"
// @Param page query int false "Page number (default 1)"
// @Param sortBy query string false "Sort column (created_at, current_balance, total_credit_amount)"
// @Param orderBy query string false "Sort order (asc or desc)"
// @Success 200 {object} BillsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 500 {object} ErrorResponse "Failed to list bills"
// @Router /bills [get]
// @Security BearerAuth
func (h *Handler) Bills(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID uuid.UUID

	if s := r.URL.Query().Get("userId"); s != "" {
		var err error

		userID, err = uuid.FromString(s)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid userId")
			return
		}
	} else {
		caller, err := entity.UserFromCtx(ctx)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
			return
		}

		userID = caller.ID
	}

	filter := parseBillFilter(r.URL.Query())

	bills, totalCount, err := h.s.Bills(ctx, userID, filter)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list bills")

		return
	}

	SendJSON(ctx, w, http.StatusOK, BillsResponse{Bills: billsToAPI(bills), TotalCount: totalCount})
}

// Bill retrieves a single bill
// @Summary Get bill
// @Description Returns one bill with its running totals and settlement state
// @Tags bills
// @Accept json
// @Produce json
// @Param bill_id path string true "Bill ID (UUID)"
// @Success 200 {object} BillEntity
// @Failure 400 {object} ErrorResponse "'bill_id' must be a UUID"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 500 {object} ErrorResponse "Failed to get bill"
// @Router /bills/{bill_id} [get]
// @Security BearerAuth
func (h *Handler) Bill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "bill_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'bill_id' must be a UUID")
		return
	}

	bill, err := h.s.Bill(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Bill not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get bill")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, billToAPI(bill))
}

type DeleteBillResponse struct{}

// DeleteBill deletes a settled bill
// @Summary Delete bill
// @Description Removes a fully paid bill together with its payment history
// @Tags bills
// @Accept json
// @Produce json
// @Param bill_id path string true "Bill ID (UUID)"
// @Success 200 {object} DeleteBillResponse
// @Failure 400 {object} ErrorResponse "'bill_id' must be a UUID"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 409 {object} ErrorResponse "Bill still has an outstanding balance"
// @Failure 500 {object} ErrorResponse "Failed to delete bill"
// @Router /bills/{bill_id} [delete]
// @Security BearerAuth
func (h *Handler) DeleteBill(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "bill_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'bill_id' must be a UUID")
		return
	}

	err = h.s.DeleteBill(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Bill not found")
		case errors.Is(err, entity.ErrOutstandingDebt):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Bill still has an outstanding balance")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to delete bill")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, DeleteBillResponse{})
}

type CreatePaymentRequest struct {
	BillID uuid.UUID       `json:"billId"`
	Issuer string          `json:"issuer"`
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

type PaymentEntity struct {
	ID        string    `json:"id"`
	BillID    string    `json:"billId"`
	Issuer    string    `json:"issuer"`
	Amount    string    `json:"amount"`
	Note      string    `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatePayment records a payment against a bill
// @Summary Record payment
// @Description Applies a payment to the bill's running totals and appends it to the ledger atomically
// @Tags payments
// @Accept json
// @Produce json
// @Param CreatePaymentRequest body CreatePaymentRequest true "Payment request"
// @Success 201 {object} PaymentEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 422 {object} ErrorResponse "Invalid issuer or amount"
// @Failure 500 {object} ErrorResponse "Failed to record payment"
// @Router /payments [post]
// @Security BearerAuth
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreatePaymentRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	payment, err := h.s.CreatePayment(ctx, req.BillID, entity.Issuer(req.Issuer), req.Amount, req.Note)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Bill not found")
		case errors.Is(err, entity.ErrInvalidIssuer):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Issuer must be 'user' or 'creditor'")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Invalid amount")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to record payment")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, paymentToAPI(payment))
}

type PaymentsResponse struct {
	Payments []PaymentEntity `json:"payments"`
}

// Payments retrieves the caller's payment history
// @Summary List payments
// @Description Lists payments across all bills of the authenticated user, or of another user when called by staff
// @Tags payments
// @Accept json
// @Produce json
// @Param userId query string false "User to list payments for (staff only, defaults to caller)"
// @Success 200 {object} PaymentsResponse
// @Failure 400 {object} ErrorResponse "Invalid userId"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Router /payments [get]
// @Security BearerAuth
func (h *Handler) Payments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var userID uuid.UUID

	if s := r.URL.Query().Get("userId"); s != "" {
		var err error

		userID, err = uuid.FromString(s)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid userId")
			return
		}
	} else {
		caller, err := entity.UserFromCtx(ctx)
		if err != nil {
			SendJSONErr(ctx, w, http.StatusUnauthorized, err, "Not authenticated")
			return
		}

		userID = caller.ID
	}

	payments, err := h.s.Payments(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrForbidden) {
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
			return
		}

		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list payments")

		return
	}

	SendJSON(ctx, w, http.StatusOK, PaymentsResponse{Payments: paymentsToAPI(payments)})
}

// BillPayments retrieves the payment ledger of one bill
// @Summary List bill payments
// @Description Lists the payments applied to a bill, newest first
// @Tags payments
// @Accept json
// @Produce json
// @Param bill_id path string true "Bill ID (UUID)"
// @Success 200 {object} PaymentsResponse
// @Failure 400 {object} ErrorResponse "'bill_id' must be a UUID"
// @Failure 403 {object} ErrorResponse "Action forbidden for user"
// @Failure 404 {object} ErrorResponse "Bill not found"
// @Failure 500 {object} ErrorResponse "Failed to list payments"
// @Router /bills/{bill_id}/payments [get]
// @Security BearerAuth
func (h *Handler) BillPayments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "bill_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'bill_id' must be a UUID")
		return
	}

	payments, err := h.s.BillPayments(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Bill not found")
		case errors.Is(err, entity.ErrForbidden):
			SendJSONErr(ctx, w, http.StatusForbidden, err, "Not enough rights for this action")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list payments")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, PaymentsResponse{Payments: paymentsToAPI(payments)})
}

type CreateCreditorRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	StreetAddress string `json:"streetAddress"`
	City          string `json:"city"`
	State         string `json:"state"`
	Country       string `json:"country"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

type CreditorEntity struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	StreetAddress string    `json:"streetAddress"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Country       string    `json:"country"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	BankName      string    `json:"bankName"`
	AccountNumber string    `json:"accountNumber"`
	CreatedBy     string    `json:"createdBy"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateCreditor registers a creditor
// @Summary Create creditor
// @Description Registers a creditor that bills can reference
// @Tags creditors
// @Accept json
// @Produce json
// @Param CreateCreditorRequest body CreateCreditorRequest true "Creditor registration request"
// @Success 201 {object} CreditorEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON"
// @Failure 409 {object} ErrorResponse "Creditor already registered"
// @Failure 422 {object} ErrorResponse "Missing required fields"
// @Failure 500 {object} ErrorResponse "Failed to create creditor"
// @Router /creditors [post]
// @Security BearerAuth
func (h *Handler) CreateCreditor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCreditorRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	creditor, err := h.s.CreateCreditor(ctx, entity.Creditor{
		Name:          req.Name,
		Description:   req.Description,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Phone:         req.Phone,
		Email:         req.Email,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrDuplicateCreditor):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Creditor already registered")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Creditor name and phone are required")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to create creditor")
		}

		return
	}

	SendJSON(ctx, w, http.StatusCreated, creditorToAPI(creditor))
}

// Creditor retrieves one creditor by ID
// @Summary Get creditor
// @Description Returns a creditor by its identifier
// @Tags creditors
// @Accept json
// @Produce json
// @Param creditor_id path string true "Creditor ID (UUID)"
// @Success 200 {object} CreditorEntity
// @Failure 400 {object} ErrorResponse "'creditor_id' must be a UUID"
// @Failure 404 {object} ErrorResponse "Creditor not found"
// @Failure 500 {object} ErrorResponse "Failed to get creditor"
// @Router /creditors/{creditor_id} [get]
// @Security BearerAuth
func (h *Handler) Creditor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "creditor_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'creditor_id' must be a UUID")
		return
	}

	creditor, err := h.s.Creditor(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Creditor not found")
		} else {
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to get creditor")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, creditorToAPI(creditor))
}

// FindCreditor looks a creditor up by phone, name or email
// @Summary Find creditor
// @Description Looks a creditor up by phone, name or email, checked in that order
// @Tags creditors
// @Accept json
// @Produce json
// @Param phone query string false "Phone number"
// @Param name query string false "Creditor name"
// @Param email query string false "Email address"
// @Success 200 {object} CreditorEntity
// @Failure 404 {object} ErrorResponse "Creditor not found"
// @Failure 422 {object} ErrorResponse "At least one lookup field is required"
// @Failure 500 {object} ErrorResponse "Failed to find creditor"
// @Router /creditors/find [get]
// @Security BearerAuth
func (h *Handler) FindCreditor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()

	creditor, err := h.s.FindCreditor(ctx, q.Get("phone"), q.Get("name"), q.Get("email"))
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Creditor not found")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "Provide a phone, name or email to search by")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to find creditor")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, creditorToAPI(creditor))
}

type CreditorsResponse struct {
	Creditors []CreditorEntity `json:"creditors"`
}

// Creditors lists registered creditors
// @Summary List creditors
// @Description Lists registered creditors ordered by name
// @Tags creditors
// @Accept json
// @Produce json
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Rows to skip"
// @Success 200 {object} CreditorsResponse
// @Failure 500 {object} ErrorResponse "Failed to list creditors"
// @Router /creditors [get]
// @Security BearerAuth
func (h *Handler) Creditors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit, err := strconv.ParseUint(r.URL.Query().Get("limit"), 10, 64)
	if err != nil {
		limit = 0
	}

	offset, err := strconv.ParseUint(r.URL.Query().Get("offset"), 10, 64)
	if err != nil {
		offset = 0
	}

	creditors, err := h.s.Creditors(ctx, limit, offset)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to list creditors")
		return
	}

	SendJSON(ctx, w, http.StatusOK, CreditorsResponse{Creditors: creditorsToAPI(creditors)})
}

type UpdateCreditorRequest struct {
	Name          *string `json:"name"`
	Description   *string `json:"description"`
	StreetAddress *string `json:"streetAddress"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Country       *string `json:"country"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	BankName      *string `json:"bankName"`
	AccountNumber *string `json:"accountNumber"`
}

// UpdateCreditor applies a partial update to a creditor
// @Summary Update creditor
// @Description Updates the provided creditor fields, leaving omitted fields untouched
// @Tags creditors
// @Accept json
// @Produce json
// @Param creditor_id path string true "Creditor ID (UUID)"
// @Param UpdateCreditorRequest body UpdateCreditorRequest true "Fields to update"
// @Success 200 {object} CreditorEntity
// @Failure 400 {object} ErrorResponse "Invalid JSON or 'creditor_id'"
// @Failure 404 {object} ErrorResponse "Creditor not found"
// @Failure 409 {object} ErrorResponse "Another creditor already uses these details"
// @Failure 422 {object} ErrorResponse "An account number requires a bank name"
// @Failure 500 {object} ErrorResponse "Failed to update creditor"
// @Router /creditors/{creditor_id} [patch]
// @Security BearerAuth
func (h *Handler) UpdateCreditor(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := uuid.FromString(chi.URLParam(r, "creditor_id"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "'creditor_id' must be a UUID")
		return
	}

	var req UpdateCreditorRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendJSONErr(ctx, w, http.StatusBadRequest, err, "Invalid JSON")
		return
	}

	creditor, err := h.s.UpdateCreditor(ctx, id, entity.CreditorPatch{
		Name:          req.Name,
		Description:   req.Description,
		StreetAddress: req.StreetAddress,
		City:          req.City,
		State:         req.State,
		Country:       req.Country,
		Phone:         req.Phone,
		Email:         req.Email,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			SendJSONErr(ctx, w, http.StatusNotFound, err, "Creditor not found")
		case errors.Is(err, entity.ErrDuplicateCreditor):
			SendJSONErr(ctx, w, http.StatusConflict, err, "Another creditor already uses these details")
		case errors.Is(err, entity.ErrInvalidArgument):
			SendJSONErr(ctx, w, http.StatusUnprocessableEntity, err, "An account number requires a bank name")
		default:
			SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Failed to update creditor")
		}

		return
	}

	SendJSON(ctx, w, http.StatusOK, creditorToAPI(creditor))
}

// HealthHandler - returns service health status.
// @Summary Health check
// @Description Health check
// @Tags health
// @Accept text/plain
// @Produce text/plain
// @Success 200 {string} string "Service is up!"
// @Router /health [get]
func (h *Handler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Service is up!\n"))
	if err != nil {
		SendJSONErr(ctx, w, http.StatusInternalServerError, err, "Service is down!")
		return
	}
}

func parseBillFilter(url url.Values) entity.BillFilter {
	const (
		defaultLimit uint64 = 100
		maxLimit     uint64 = 500
		defaultPage  uint64 = 1
	)

	qPaid := url.Get("paid")
	qLimit := url.Get("limit")
	qPage := url.Get("page")
	sortBy := entity.BillSortCol(url.Get("sortBy"))
	orderBy := entity.OrderByCol(url.Get("orderBy"))

	limit, err := strconv.ParseUint(qLimit, 10, 64)
	if err != nil {
		limit = defaultLimit
	}

	if limit > maxLimit {
		limit = maxLimit
	}

	page, err := strconv.ParseUint(qPage, 10, 64)
	if err != nil {
		page = defaultPage
	}

	if !sortBy.IsValid() {
		sortBy = entity.SortByCreatedAt
	}

	if !orderBy.IsValid() {
		orderBy = entity.DESC
	}

	filter := entity.BillFilter{
		Page:    page,
		Limit:   limit,
		SortBy:  sortBy,
		OrderBy: orderBy,
	}

	if qPaid != "" {
		paid, err := strconv.ParseBool(qPaid)
		if err == nil {
			filter.Paid = &paid
		}
	}

	return filter
}

func billToAPI(b entity.Bill) BillEntity {
	return BillEntity{
		ID:                b.ID.String(),
		UserID:            b.UserID.String(),
		CreditorID:        b.CreditorID.String(),
		Description:       b.Description,
		TotalCreditAmount: b.TotalCreditAmount.String(),
		TotalPaidAmount:   b.TotalPaidAmount.String(),
		CurrentBalance:    b.CurrentBalance.String(),
		Paid:              b.Paid,
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
}

func billsToAPI(bills []entity.Bill) []BillEntity {
	res := make([]BillEntity, 0, len(bills))
	for _, b := range bills {
		res = append(res, billToAPI(b))
	}

	return res
}

func paymentToAPI(p entity.Payment) PaymentEntity {
	return PaymentEntity{
		ID:        p.ID.String(),
		BillID:    p.BillID.String(),
		Issuer:    p.Issuer.String(),
		Amount:    p.Amount.String(),
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

func paymentsToAPI(payments []entity.Payment) []PaymentEntity {
	res := make([]PaymentEntity, 0, len(payments))
	for _, p := range payments {
		res = append(res, paymentToAPI(p))
	}

	return res
}

func creditorToAPI(c entity.Creditor) CreditorEntity {
	return CreditorEntity{
		ID:            c.ID.String(),
		Name:          c.Name,
		Description:   c.Description,
		StreetAddress: c.StreetAddress,
		City:          c.City,
		State:         c.State,
		Country:       c.Country,
		Phone:         c.Phone,
		Email:         c.Email,
		BankName:      c.BankName,
		AccountNumber: c.AccountNumber,
		CreatedBy:     c.CreatedBy.String(),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func creditorsToAPI(creditors []entity.Creditor) []CreditorEntity {
	res := make([]CreditorEntity, 0, len(creditors))
	for _, c := range creditors {
		res = append(res, creditorToAPI(c))
	}

	return res
}
