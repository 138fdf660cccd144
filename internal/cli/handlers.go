package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aaronlin79/game-rental-system/internal/rental"
)

// Store is what the workflow handlers need from the rental repository.
type Store interface {
	LoginExists(ctx context.Context, login string) (bool, error)
	CreateUser(ctx context.Context, login, password string, role rental.Role, phoneNum string) error
	Authenticate(ctx context.Context, login, password string) error
	Role(ctx context.Context, login string) (rental.Role, error)
	PrintProfile(ctx context.Context, login string) (int, error)
	UpdateProfile(ctx context.Context, login, phoneNum, password string) error
	UpdateUser(ctx context.Context, login string, role rental.Role, phoneNum string, numOverdueGames int) error

	PrintCatalog(ctx context.Context, f rental.CatalogFilter) (int, error)
	GameExists(ctx context.Context, gameID string) (bool, error)
	UpdateCatalogItem(ctx context.Context, item rental.CatalogItem) error

	PlaceOrder(ctx context.Context, login string, lines []rental.OrderLine) (orderID, trackingID string, total float64, err error)
	OrderOwner(ctx context.Context, rentalOrderID string) (string, error)
	PrintAllOrders(ctx context.Context, login string) (int, error)
	PrintRecentOrders(ctx context.Context, login string) (int, error)
	PrintOrderInfo(ctx context.Context, rentalOrderID string) (int, error)

	PrintTrackingByOrder(ctx context.Context, rentalOrderID string) (int, error)
	TrackingExists(ctx context.Context, trackingID string) (bool, error)
	UpdateTracking(ctx context.Context, trackingID, status, currentLocation, courierName, additionalComments string) error
}

var _ Store = (*rental.Repo)(nil)

// Handler runs the menu workflows: prompt, validate, authorize, issue
// statements, confirm.
type Handler struct {
	Store Store
	P     *Prompter
	Out   io.Writer
}

func NewHandler(store Store, in io.Reader, out io.Writer) *Handler {
	return &Handler{Store: store, P: NewPrompter(in, out), Out: out}
}

// CreateUser self-registers a new account; any role may be chosen.
func (h *Handler) CreateUser(ctx context.Context) error {
	login, err := h.P.Line("Input user login")
	if err != nil {
		return err
	}
	password, err := h.P.Line("Input user password")
	if err != nil {
		return err
	}
	role, err := h.P.RoleInput("Input user role")
	if err != nil {
		return err
	}
	phoneNum, err := h.P.Phone("Input user phone number (in the format: +1-999-999-9999)")
	if err != nil {
		return err
	}

	exists, err := h.Store.LoginExists(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		fmt.Fprintln(h.Out, "User login already exists. Please choose a different login.")
		return nil
	}
	if err := h.Store.CreateUser(ctx, login, password, role, phoneNum); err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "User has been created!")
	return nil
}

// LogIn returns the new session on success and the zero session on bad
// credentials.
func (h *Handler) LogIn(ctx context.Context) (rental.Session, error) {
	login, err := h.P.Line("Input user login")
	if err != nil {
		return rental.Session{}, err
	}
	password, err := h.P.Line("Input user password")
	if err != nil {
		return rental.Session{}, err
	}
	if login == "" || password == "" {
		fmt.Fprintln(h.Out, "Login and password cannot be empty. Please try again.")
		return rental.Session{}, nil
	}

	if err := h.Store.Authenticate(ctx, login, password); err != nil {
		if errors.Is(err, rental.ErrInvalidCredentials) {
			fmt.Fprintln(h.Out, "Invalid login")
			return rental.Session{}, nil
		}
		return rental.Session{}, err
	}
	fmt.Fprintln(h.Out, "User has been logged in!")
	return rental.Session{Login: login}, nil
}

func (h *Handler) ViewProfile(ctx context.Context, s rental.Session) error {
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}

	var target string
	for {
		target, err = h.P.Line("Input user's login to view")
		if err != nil {
			return err
		}
		exists, err := h.Store.LoginExists(ctx, target)
		if err != nil {
			return err
		}
		if exists {
			break
		}
		fmt.Fprintln(h.Out, "Invalid login. Please try again.")
	}

	if rental.SelfOnly(rental.ActionViewProfile, role) && target != s.Login {
		fmt.Fprintln(h.Out, "Access denied: Customers can only view their own profile.")
		return nil
	}
	_, err = h.Store.PrintProfile(ctx, target)
	return err
}

// UpdateProfile edits the session's own phone number and password.
func (h *Handler) UpdateProfile(ctx context.Context, s rental.Session) error {
	phoneNum, err := h.P.Phone("Input user phone number (in the format: +1-999-999-9999)")
	if err != nil {
		return err
	}
	password, err := h.P.Line("Input new user password")
	if err != nil {
		return err
	}
	if err := h.Store.UpdateProfile(ctx, s.Login, phoneNum, password); err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "Profile has been updated!")
	return nil
}

func (h *Handler) ViewCatalog(ctx context.Context) error {
	genre, err := h.P.Genre()
	if err != nil {
		return err
	}
	minPrice, err := h.P.Price("Input minimum price (press 'Enter' if no limit)")
	if err != nil {
		return err
	}
	maxPrice, err := h.P.Price("Input maximum price (press 'Enter' if no limit)")
	if err != nil {
		return err
	}
	fmt.Fprintln(h.Out)

	_, err = h.Store.PrintCatalog(ctx, rental.CatalogFilter{
		Genre:    genre,
		MinPrice: minPrice,
		MaxPrice: maxPrice,
	})
	return err
}

// PlaceOrder books an order against the session login.
func (h *Handler) PlaceOrder(ctx context.Context, s rental.Session) error {
	count, err := h.P.IntMin("Input number of games", 1)
	if err != nil {
		return err
	}

	lines := make([]rental.OrderLine, 0, count)
	for i := 0; i < count; i++ {
		var gameID string
		for {
			gameID, err = h.P.Line("Input game ID")
			if err != nil {
				return err
			}
			exists, err := h.Store.GameExists(ctx, gameID)
			if err != nil {
				return err
			}
			if exists {
				break
			}
			fmt.Fprintln(h.Out, "Game ID not found in catalog. Please try again.")
		}
		units, err := h.P.IntMin("Input units ordered", 1)
		if err != nil {
			return err
		}
		lines = append(lines, rental.OrderLine{GameID: gameID, Units: units})
	}

	_, trackingID, _, err := h.Store.PlaceOrder(ctx, s.Login, lines)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "Order has been placed with Tracking ID: "+trackingID)
	return nil
}

func (h *Handler) ViewAllOrders(ctx context.Context, s rental.Session) error {
	target, err := h.P.Line("Input user login")
	if err != nil {
		return err
	}
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}
	if rental.SelfOnly(rental.ActionViewAllOrders, role) && target != s.Login {
		fmt.Fprintln(h.Out, "Access denied: Customers can only view their own rental order history.")
		return nil
	}
	_, err = h.Store.PrintAllOrders(ctx, target)
	return err
}

func (h *Handler) ViewRecentOrders(ctx context.Context, s rental.Session) error {
	target, err := h.P.Line("Input user login")
	if err != nil {
		return err
	}
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}
	if rental.SelfOnly(rental.ActionViewRecentOrders, role) && target != s.Login {
		fmt.Fprintln(h.Out, "Access denied: Customers can only view their own recent rental orders.")
		return nil
	}
	_, err = h.Store.PrintRecentOrders(ctx, target)
	return err
}

func (h *Handler) ViewOrderInfo(ctx context.Context, s rental.Session) error {
	orderID, err := h.P.Line("Input rental order ID")
	if err != nil {
		return err
	}
	ok, err := h.authorizeOrderAccess(ctx, s, rental.ActionViewOrderInfo, orderID,
		"Access denied: Customers can only view their own rental orders.")
	if err != nil || !ok {
		return err
	}
	_, err = h.Store.PrintOrderInfo(ctx, orderID)
	return err
}

func (h *Handler) ViewTrackingInfo(ctx context.Context, s rental.Session) error {
	orderID, err := h.P.Line("Input rental order ID")
	if err != nil {
		return err
	}
	ok, err := h.authorizeOrderAccess(ctx, s, rental.ActionViewTrackingInfo, orderID,
		"Access denied: Customers can only view tracking for their own rental orders.")
	if err != nil || !ok {
		return err
	}
	_, err = h.Store.PrintTrackingByOrder(ctx, orderID)
	return err
}

// authorizeOrderAccess applies the customer ownership rule to an order
// lookup. False with nil error means denied (already reported).
func (h *Handler) authorizeOrderAccess(ctx context.Context, s rental.Session, action rental.Action, orderID, denied string) (bool, error) {
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return false, err
	}
	if !rental.SelfOnly(action, role) {
		return true, nil
	}
	owner, err := h.Store.OrderOwner(ctx, orderID)
	if errors.Is(err, rental.ErrNotFound) {
		fmt.Fprintln(h.Out, "Order not found.")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if owner != s.Login {
		fmt.Fprintln(h.Out, denied)
		return false, nil
	}
	return true, nil
}

// UpdateTrackingInfo is restricted to employees and managers.
func (h *Handler) UpdateTrackingInfo(ctx context.Context, s rental.Session) error {
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}
	if !rental.Allowed(rental.ActionUpdateTracking, role) {
		fmt.Fprintln(h.Out, "Access denied: Only employees and managers can update tracking information.")
		return nil
	}

	trackingID, err := h.P.Line("Input tracking ID")
	if err != nil {
		return err
	}
	exists, err := h.Store.TrackingExists(ctx, trackingID)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(h.Out, "Tracking ID not found.")
		return nil
	}

	status, err := h.P.Status()
	if err != nil {
		return err
	}
	currentLocation, err := h.P.Line("Input new (current) location")
	if err != nil {
		return err
	}
	courierName, err := h.P.Line("Input new courier name")
	if err != nil {
		return err
	}
	additionalComments, err := h.P.Line("Input new additional comments")
	if err != nil {
		return err
	}

	if err := h.Store.UpdateTracking(ctx, trackingID, status, currentLocation, courierName, additionalComments); err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "Tracking information has been updated!")
	return nil
}

// UpdateCatalog is manager-only.
func (h *Handler) UpdateCatalog(ctx context.Context, s rental.Session) error {
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}
	if !rental.Allowed(rental.ActionUpdateCatalog, role) {
		fmt.Fprintln(h.Out, "Access denied: Only managers can update the catalog.")
		return nil
	}

	gameID, err := h.P.Line("Input game ID")
	if err != nil {
		return err
	}
	exists, err := h.Store.GameExists(ctx, gameID)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(h.Out, "Game ID not found in catalog.")
		return nil
	}

	gameName, err := h.P.Line("Input new game name")
	if err != nil {
		return err
	}
	genre, err := h.P.GenreRequired("Input new genre")
	if err != nil {
		return err
	}
	price, err := h.P.Float("Input new price")
	if err != nil {
		return err
	}
	description, err := h.P.Line("Input new description")
	if err != nil {
		return err
	}
	imageURL, err := h.P.Line("Input new image URL")
	if err != nil {
		return err
	}

	if err := h.Store.UpdateCatalogItem(ctx, rental.CatalogItem{
		GameID:      gameID,
		GameName:    gameName,
		Genre:       genre,
		Price:       price,
		Description: description,
		ImageURL:    imageURL,
	}); err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "Catalog has been updated!")
	return nil
}

// UpdateUser is manager-only.
func (h *Handler) UpdateUser(ctx context.Context, s rental.Session) error {
	role, err := h.Store.Role(ctx, s.Login)
	if err != nil {
		return err
	}
	if !rental.Allowed(rental.ActionUpdateUser, role) {
		fmt.Fprintln(h.Out, "Access denied: Only managers can update users.")
		return nil
	}

	login, err := h.P.Line("Input user login")
	if err != nil {
		return err
	}
	exists, err := h.Store.LoginExists(ctx, login)
	if err != nil {
		return err
	}
	if !exists {
		fmt.Fprintln(h.Out, "User login does not exist.")
		return nil
	}

	newRole, err := h.P.RoleInput("Input new role")
	if err != nil {
		return err
	}
	phoneNum, err := h.P.Phone("Input new phone number (in the format: +1-999-999-9999)")
	if err != nil {
		return err
	}
	numOverdue, err := h.P.Int("Input new number of overdue games")
	if err != nil {
		return err
	}

	if err := h.Store.UpdateUser(ctx, login, newRole, phoneNum, numOverdue); err != nil {
		return err
	}
	fmt.Fprintln(h.Out, "User information has been updated!")
	return nil
}
