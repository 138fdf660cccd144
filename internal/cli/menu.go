package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/aaronlin79/game-rental-system/internal/rental"
)

// Run drives the menu loop until exit or end of input. Statement
// failures inside a handler are logged to the error stream and the loop
// continues; only a read failure ends the session.
func (h *Handler) Run(ctx context.Context) error {
	h.greeting()
	for {
		h.mainMenu()
		choice, err := h.P.Choice()
		if err != nil {
			return ignoreEOF(err)
		}

		var s rental.Session
		switch choice {
		case 1:
			err = h.CreateUser(ctx)
		case 2:
			s, err = h.LogIn(ctx)
		case 9:
			return nil
		default:
			fmt.Fprintln(h.Out, "Unrecognized choice!")
		}
		if stop := h.report(err); stop {
			return nil
		}

		if s.Active() {
			if stop := h.userLoop(ctx, s); stop {
				return nil
			}
		}
	}
}

// userLoop runs the logged-in menu until logout. Returns true when
// input ended and the whole program should stop.
func (h *Handler) userLoop(ctx context.Context, s rental.Session) bool {
	for {
		h.userMenu()
		choice, err := h.P.Choice()
		if err != nil {
			return true
		}

		switch choice {
		case 1:
			err = h.ViewProfile(ctx, s)
		case 2:
			err = h.UpdateProfile(ctx, s)
		case 3:
			err = h.ViewCatalog(ctx)
		case 4:
			err = h.PlaceOrder(ctx, s)
		case 5:
			err = h.ViewAllOrders(ctx, s)
		case 6:
			err = h.ViewRecentOrders(ctx, s)
		case 7:
			err = h.ViewOrderInfo(ctx, s)
		case 8:
			err = h.ViewTrackingInfo(ctx, s)
		case 9:
			err = h.UpdateTrackingInfo(ctx, s)
		case 10:
			err = h.UpdateCatalog(ctx, s)
		case 11:
			err = h.UpdateUser(ctx, s)
		case 20:
			return false
		default:
			fmt.Fprintln(h.Out, "Unrecognized choice! Try again!")
		}
		if stop := h.report(err); stop {
			return true
		}
	}
}

// report logs a handler failure and says whether the loop should stop.
func (h *Handler) report(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) {
		return true
	}
	log.Println(err)
	return false
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (h *Handler) greeting() {
	fmt.Fprintln(h.Out,
		"\n\n****************************************\n"+
			"***          User Interface          ***\n"+
			"****************************************")
}

func (h *Handler) mainMenu() {
	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "\n\n -----------\n| MAIN MENU |\n -----------")
	fmt.Fprintln(h.Out, "1. Create user")
	fmt.Fprintln(h.Out, "2. Log in")
	fmt.Fprintln(h.Out, "9. < EXIT")
	fmt.Fprintln(h.Out)
}

func (h *Handler) userMenu() {
	fmt.Fprintln(h.Out)
	fmt.Fprintln(h.Out, "\n\n ---------\n| OPTIONS |\n ---------")
	fmt.Fprintln(h.Out, "1. View Profile")
	fmt.Fprintln(h.Out, "2. Update Profile")
	fmt.Fprintln(h.Out, "3. View Catalog")
	fmt.Fprintln(h.Out, "4. Place Rental Order")
	fmt.Fprintln(h.Out, "5. View Full Rental Order History")
	fmt.Fprintln(h.Out, "6. View Past 5 Rental Orders")
	fmt.Fprintln(h.Out, "7. View Rental Order Information")
	fmt.Fprintln(h.Out, "8. View Tracking Information")
	fmt.Fprintln(h.Out, "9. Update Tracking Information")
	fmt.Fprintln(h.Out, "10. Update Catalog")
	fmt.Fprintln(h.Out, "11. Update User")
	fmt.Fprintln(h.Out, ".........................")
	fmt.Fprintln(h.Out, "20. Log out")
	fmt.Fprintln(h.Out)
}
