package api

// Group messages.

type Group struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	CreatedBy   int64    `json:"created_by"`
	CreatedAt   int64    `json:"created_at"`
	Members     []Member `json:"members"`
}

type Member struct {
	UserID   int64  `json:"user_id"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joined_at"`
}

type CreateGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type CreateGroupResponse struct {
	Group Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetGroupResponse struct {
	Group Group `json:"group"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []GroupSummary `json:"groups"`
}

type GroupSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// UpdateGroupRequest changes only the fields that are set.
type UpdateGroupRequest struct {
	GroupID     int64   `json:"group_id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

type UpdateGroupResponse struct {
	Group Group `json:"group"`
}

type DeleteGroupRequest struct {
	GroupID int64 `json:"group_id"`
}

type DeleteGroupResponse struct{}

type AddMemberRequest struct {
	GroupID int64 `json:"group_id"`
	UserID  int64 `json:"user_id"`
	// Role defaults to MEMBER.
	Role string `json:"role,omitempty"`
}

type AddMemberResponse struct {
	Group Group `json:"group"`
}

type RemoveMemberRequest struct {
	GroupID int64 `json:"group_id"`
	UserID  int64 `json:"user_id"`
}

type RemoveMemberResponse struct{}

// Expense messages.

type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Icon      string `json:"icon,omitempty"`
	Color     string `json:"color,omitempty"`
	IsDefault bool   `json:"is_default"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []Category `json:"categories"`
}

// SplitInput names one participant. Value is required for EXACT splits and
// ignored for EQUAL ones.
type SplitInput struct {
	UserID int64  `json:"user_id"`
	Value  string `json:"value,omitempty"`
}

type Split struct {
	UserID      int64  `json:"user_id"`
	SplitType   string `json:"split_type"`
	SplitValue  string `json:"split_value,omitempty"`
	ShareAmount string `json:"share_amount"`
}

type Expense struct {
	ID          int64   `json:"id"`
	GroupID     int64   `json:"group_id"`
	Description string  `json:"description"`
	Amount      string  `json:"amount"`
	Currency    string  `json:"currency"`
	PaidBy      int64   `json:"paid_by"`
	CategoryID  *int64  `json:"category_id,omitempty"`
	ExpenseDate string  `json:"expense_date,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ReceiptURL  string  `json:"receipt_url,omitempty"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
	Splits      []Split `json:"splits"`
}

type CreateExpenseRequest struct {
	GroupID     int64  `json:"group_id"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency,omitempty"`
	// PaidBy defaults to the caller.
	PaidBy      int64        `json:"paid_by,omitempty"`
	SplitType   string       `json:"split_type"`
	Splits      []SplitInput `json:"splits"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	ExpenseDate string       `json:"expense_date,omitempty"`
	Notes       string       `json:"notes,omitempty"`
	ReceiptURL  string       `json:"receipt_url,omitempty"`
}

type CreateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type GetExpenseRequest struct {
	ExpenseID int64 `json:"expense_id"`
}

type GetExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type ListExpensesRequest struct {
	GroupID int64 `json:"group_id"`
}

type ListExpensesResponse struct {
	Expenses []Expense `json:"expenses"`
}

// UpdateExpenseRequest changes only the fields that are set. Setting Amount,
// SplitType or Splits recomputes every share; when Splits is omitted the
// current participants are kept.
type UpdateExpenseRequest struct {
	ExpenseID   int64        `json:"expense_id"`
	Description *string      `json:"description,omitempty"`
	Amount      *string      `json:"amount,omitempty"`
	Currency    *string      `json:"currency,omitempty"`
	SplitType   *string      `json:"split_type,omitempty"`
	Splits      []SplitInput `json:"splits,omitempty"`
	CategoryID  *int64       `json:"category_id,omitempty"`
	ExpenseDate *string      `json:"expense_date,omitempty"`
	Notes       *string      `json:"notes,omitempty"`
	ReceiptURL  *string      `json:"receipt_url,omitempty"`
}

type UpdateExpenseResponse struct {
	Expense Expense `json:"expense"`
}

type DeleteExpenseRequest struct {
	ExpenseID int64 `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

// Settlement messages.

type Settlement struct {
	ID           int64  `json:"id"`
	GroupID      int64  `json:"group_id"`
	PayerID      int64  `json:"payer_id"`
	PayeeID      int64  `json:"payee_id"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
	CreatedAt    int64  `json:"created_at"`
	UpdatedAt    int64  `json:"updated_at"`
	MarkedPaidAt int64  `json:"marked_paid_at,omitempty"`
	SettledAt    int64  `json:"settled_at,omitempty"`
}

type CreateSettlementRequest struct {
	GroupID int64 `json:"group_id"`
	// PayerID defaults to the caller.
	PayerID int64  `json:"payer_id,omitempty"`
	PayeeID int64  `json:"payee_id"`
	Amount  string `json:"amount"`
}

type CreateSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type MarkSettlementPaidRequest struct {
	SettlementID int64 `json:"settlement_id"`
}

type MarkSettlementPaidResponse struct {
	Settlement Settlement `json:"settlement"`
}

type ConfirmSettlementRequest struct {
	SettlementID int64 `json:"settlement_id"`
}

type ConfirmSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type GetSettlementRequest struct {
	SettlementID int64 `json:"settlement_id"`
}

type GetSettlementResponse struct {
	Settlement Settlement `json:"settlement"`
}

type ListSettlementsRequest struct {
	GroupID int64 `json:"group_id"`
}

type ListSettlementsResponse struct {
	Settlements []Settlement `json:"settlements"`
}

// Balance messages.

type UserBalance struct {
	UserID  int64  `json:"user_id"`
	Balance string `json:"balance"`
}

type Debt struct {
	From   int64  `json:"from"`
	To     int64  `json:"to"`
	Amount string `json:"amount"`
}

type GetGroupBalancesRequest struct {
	GroupID int64 `json:"group_id"`
}

type GetGroupBalancesResponse struct {
	GroupID         int64         `json:"group_id"`
	Balances        []UserBalance `json:"balances"`
	SimplifiedDebts []Debt        `json:"simplified_debts"`
}

type GetUserBalancesRequest struct {
	// UserID defaults to the caller.
	UserID int64 `json:"user_id,omitempty"`
}

type GroupBalance struct {
	GroupID   int64  `json:"group_id"`
	GroupName string `json:"group_name"`
	Balance   string `json:"balance"`
}

type GetUserBalancesResponse struct {
	UserID       int64          `json:"user_id"`
	TotalBalance string         `json:"total_balance"`
	Groups       []GroupBalance `json:"groups"`
	// SkippedGroups lists groups that disappeared while balances were computed.
	SkippedGroups []int64 `json:"skipped_groups,omitempty"`
}

type PreviewSplitsRequest struct {
	Amount    string       `json:"amount"`
	SplitType string       `json:"split_type"`
	Splits    []SplitInput `json:"splits"`
}

type Share struct {
	UserID int64  `json:"user_id"`
	Amount string `json:"amount"`
}

type PreviewSplitsResponse struct {
	Shares []Share `json:"shares"`
}
