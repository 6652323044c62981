package engine

import "errors"

// Error taxonomy for the inventory and order engine. Handlers match these
// with errors.Is and render the message back into the originating view;
// no engine error is allowed to crash a request.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrProductInUse      = errors.New("product is referenced by undelivered orders")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrValidation        = errors.New("validation failed")
)
