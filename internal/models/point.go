package models

// TransactionType identifies the direction of a point transaction.
type TransactionType string

const (
	TransactionTypeCharge TransactionType = "CHARGE"
	TransactionTypeUse    TransactionType = "USE"
)

// UserPoint represents the current point balance for one user.
// A user with no prior activity reads as a zero balance stamped with the
// time of first observation; no record is persisted until the first mutation.
type UserPoint struct {
	ID           int64 `bson:"_id" json:"id"`
	Point        int64 `bson:"point" json:"point"`
	UpdateMillis int64 `bson:"updateMillis" json:"updateMillis"`
}

// PointHistory is one immutable entry in a user's transaction ledger.
// IDs are assigned from a single counter shared across all users, so they
// are strictly increasing system-wide, not per user.
type PointHistory struct {
	ID           int64           `bson:"_id" json:"id"`
	UserID       int64           `bson:"userId" json:"userId"`
	Amount       int64           `bson:"amount" json:"amount"`
	Type         TransactionType `bson:"type" json:"type"`
	UpdateMillis int64           `bson:"updateMillis" json:"updateMillis"`
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
