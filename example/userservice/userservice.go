// Package userservice demonstrates mocking DB-backed functions: the user
// lookup runs against Postgres in production, while tests substitute mock
// implementations and assert on the recorded calls. The pool parameter is
// excluded from recording since a connection pool has no value equality.
package userservice

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakob-rzeppa/fnmock/double"
	"github.com/jakob-rzeppa/fnmock/double/registry"
)

const (
	fetchUserNameFuncName = "userservice.fetchUserName"
	sendEmailFuncName     = "userservice.sendEmail"
)

// FetchUserNameParams is the parameter tuple of fetchUserName. Positions 0
// (context) and 1 (pool) are ignored for recording and assertions.
type FetchUserNameParams struct {
	Ctx context.Context
	DB  *pgxpool.Pool
	ID  int
}

// FetchUserNameResult packs fetchUserName's results into a single value.
type FetchUserNameResult struct {
	Name string
	Err  error
}

// SendEmailParams is the parameter tuple of sendEmail.
type SendEmailParams struct {
	To      string
	Subject string
}

// UserService resolves user names and sends notifications through swappable
// call paths, wired the way a generated call site would be.
type UserService struct {
	db            *pgxpool.Pool
	fetchUserName func(FetchUserNameParams) FetchUserNameResult
	sendEmail     func(SendEmailParams) error
}

// NewUserService wires the service's mockable functions against the doubles
// of the given execution context.
func NewUserService(mode double.Mode, store *registry.Store, db *pgxpool.Pool) (*UserService, error) {
	fetchMock, err := registry.MockFor[FetchUserNameParams, FetchUserNameResult](
		store,
		fetchUserNameFuncName,
		double.WithIgnoredParams(0, 1),
	)
	if err != nil {
		return nil, err
	}

	sendMock, err := registry.MockFor[SendEmailParams, error](store, sendEmailFuncName)
	if err != nil {
		return nil, err
	}

	return &UserService{
		db:            db,
		fetchUserName: double.WireMock(mode, fetchMock, fetchUserName),
		sendEmail:     double.WireMock(mode, sendMock, sendEmail),
	}, nil
}

// FetchUserName returns the name of the user with the given ID.
func (s *UserService) FetchUserName(ctx context.Context, id int) (string, error) {
	result := s.fetchUserName(FetchUserNameParams{Ctx: ctx, DB: s.db, ID: id})

	return result.Name, result.Err
}

// NotifyUser looks the user up and sends them a notification mail.
func (s *UserService) NotifyUser(ctx context.Context, id int, subject string) error {
	result := s.fetchUserName(FetchUserNameParams{Ctx: ctx, DB: s.db, ID: id})
	if result.Err != nil {
		return result.Err
	}

	return s.sendEmail(SendEmailParams{To: result.Name, Subject: subject})
}

// fetchUserName is the real implementation: a single-row lookup on the users table.
func fetchUserName(params FetchUserNameParams) FetchUserNameResult {
	row := params.DB.QueryRow(params.Ctx, "SELECT name FROM users WHERE id = $1", params.ID)

	var name string
	if scanErr := row.Scan(&name); scanErr != nil {
		return FetchUserNameResult{Err: scanErr}
	}

	return FetchUserNameResult{Name: name}
}

// sendEmail is the real implementation. Delivery is out of scope for the
// demo; a real project would talk to its mail relay here.
func sendEmail(SendEmailParams) error {
	return nil
}
