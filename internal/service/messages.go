package service

import "errors"

// Messages shown to the person entering dishes
const (
	MsgDishAdded            = "The Menu Item has been added successfully"
	MsgIncompleteSubmission = "All the Information fields should be completed"
	MsgUnknownCategory      = "Category must be one of Starters, Mains or Desserts"
	MsgInvalidPrice         = "Price must be a valid non-negative number"
	MsgDuplicateDish        = "A dish with this name is already on the menu"
	MsgDishNotFound         = "Dish not found"
)

// UserMessage returns the message for a validation error, or "" when err
// is not one the user can fix.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrIncompleteSubmission):
		return MsgIncompleteSubmission
	case errors.Is(err, ErrUnknownCategory):
		return MsgUnknownCategory
	case errors.Is(err, ErrInvalidPrice):
		return MsgInvalidPrice
	case errors.Is(err, ErrDuplicateDish):
		return MsgDuplicateDish
	default:
		return ""
	}
}
