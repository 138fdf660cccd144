package rental

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/aaronlin79/game-rental-system/internal/sqlexec"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrLoginTaken         = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Repo issues the store's statements through the executor. One repo per
// process, holding the single shared connection pool.
type Repo struct {
	Exec *sqlexec.Executor
	DB   Beginner
}

func NewRepo(pool *pgxpool.Pool, out io.Writer) *Repo {
	return &Repo{Exec: sqlexec.New(pool, out), DB: poolBeginner{pool}}
}

// ---- users ----

func (r *Repo) LoginExists(ctx context.Context, login string) (bool, error) {
	n, err := r.Exec.QueryCount(ctx, `SELECT 1 FROM Users WHERE login = $1`, login)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateUser stores a new user with a bcrypt password hash. The caller
// checks login availability first; a concurrent duplicate still fails
// here on the key constraint.
func (r *Repo) CreateUser(ctx context.Context, login, password string, role Role, phoneNum string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return r.Exec.Execute(ctx,
		`INSERT INTO Users (login, password, role, phoneNum) VALUES ($1, $2, $3, $4)`,
		login, string(hash), string(role), phoneNum)
}

// Authenticate fetches the stored hash for login and compares. Exactly
// one matching row and a matching password, or ErrInvalidCredentials.
func (r *Repo) Authenticate(ctx context.Context, login, password string) error {
	rows, err := r.Exec.QueryRows(ctx, `SELECT password FROM Users WHERE login = $1`, login)
	if err != nil {
		return err
	}
	if len(rows) != 1 {
		return ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rows[0][0]), []byte(password)) != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// Role looks the role up fresh on every call. It is deliberately not
// cached: a role change made mid-session takes effect on the next
// authorization check.
func (r *Repo) Role(ctx context.Context, login string) (Role, error) {
	rows, err := r.Exec.QueryRows(ctx, `SELECT role FROM Users WHERE login = $1`, login)
	if err != nil {
		return "", err
	}
	if len(rows) == 0 {
		return "", ErrNotFound
	}
	return Role(rows[0][0]), nil
}

func (r *Repo) PrintProfile(ctx context.Context, login string) (int, error) {
	return r.Exec.QueryPrint(ctx, `SELECT * FROM Users WHERE login = $1`, login)
}

// UpdateProfile sets a user's phone number and password (rehashed).
func (r *Repo) UpdateProfile(ctx context.Context, login, phoneNum, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return r.Exec.Execute(ctx,
		`UPDATE Users SET phoneNum = $1, password = $2 WHERE login = $3`,
		phoneNum, string(hash), login)
}

// UpdateUser is the manager edit of role, phone number and overdue
// count.
func (r *Repo) UpdateUser(ctx context.Context, login string, role Role, phoneNum string, numOverdueGames int) error {
	return r.Exec.Execute(ctx,
		`UPDATE Users SET role = $1, phoneNum = $2, numOverdueGames = $3 WHERE login = $4`,
		string(role), phoneNum, numOverdueGames, login)
}

// ---- catalog ----

func (r *Repo) PrintCatalog(ctx context.Context, f CatalogFilter) (int, error) {
	sql, args := f.SQL()
	return r.Exec.QueryPrint(ctx, sql, args...)
}

func (r *Repo) GameExists(ctx context.Context, gameID string) (bool, error) {
	n, err := r.Exec.QueryCount(ctx, `SELECT 1 FROM Catalog WHERE gameID = $1`, gameID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Repo) GamePrice(ctx context.Context, gameID string) (float64, error) {
	rows, err := r.Exec.QueryRows(ctx, `SELECT price FROM Catalog WHERE gameID = $1`, gameID)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("game %s: %w", gameID, ErrNotFound)
	}
	price, err := strconv.ParseFloat(rows[0][0], 64)
	if err != nil {
		return 0, fmt.Errorf("game %s price: %w", gameID, err)
	}
	return price, nil
}

func (r *Repo) UpdateCatalogItem(ctx context.Context, item CatalogItem) error {
	return r.Exec.Execute(ctx,
		`UPDATE Catalog SET gameName = $1, genre = $2, price = $3, description = $4, imageURL = $5 WHERE gameID = $6`,
		item.GameName, item.Genre, item.Price, item.Description, item.ImageURL, item.GameID)
}

// ---- tracking ----

func (r *Repo) PrintTrackingByOrder(ctx context.Context, rentalOrderID string) (int, error) {
	return r.Exec.QueryPrint(ctx, `SELECT * FROM TrackingInfo WHERE rentalOrderID = $1`, rentalOrderID)
}

func (r *Repo) TrackingExists(ctx context.Context, trackingID string) (bool, error) {
	n, err := r.Exec.QueryCount(ctx, `SELECT 1 FROM TrackingInfo WHERE trackingID = $1`, trackingID)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateTracking rewrites the mutable tracking fields and advances
// lastUpdateDate. Exactly the row with trackingID is touched.
func (r *Repo) UpdateTracking(ctx context.Context, trackingID, status, currentLocation, courierName, additionalComments string) error {
	return r.Exec.Execute(ctx,
		`UPDATE TrackingInfo SET status = $1, currentLocation = $2, courierName = $3, additionalComments = $4, lastUpdateDate = current_timestamp WHERE trackingID = $5`,
		status, currentLocation, courierName, additionalComments, trackingID)
}
