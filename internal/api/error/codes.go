package error

import "net/http"

type ErrorCode string

const (
	UnknownError            ErrorCode = "unknown_error"
	InternalServerError     ErrorCode = "internal_server_error"
	BadRequest              ErrorCode = "bad_request"
	ValidationError         ErrorCode = "validation_error"
	InvalidCredentials      ErrorCode = "invalid_credentials"
	InvalidAccessToken      ErrorCode = "invalid_access_token"
	ExpiredAccessToken      ErrorCode = "expired_access_token"
	InsufficientPermissions ErrorCode = "insufficient_permissions"
	TooManyRequests         ErrorCode = "too_many_requests"
	WeakPassword            ErrorCode = "weak_password"
	EmailConflict           ErrorCode = "email_conflict"
	UsernameConflict        ErrorCode = "username_conflict"
	Conflict                ErrorCode = "conflict"
	NotFound                ErrorCode = "not_found"
	PageNotFound            ErrorCode = "page_not_found"
	RecipeNotFound          ErrorCode = "recipe_not_found"
	RecipeNotOwned          ErrorCode = "recipe_not_owned"
	IngredientNotFound      ErrorCode = "ingredient_not_found"
	TagNotFound             ErrorCode = "tag_not_found"
	UserNotFound            ErrorCode = "user_not_found"
	ImageNotFound           ErrorCode = "image_not_found"
	AlreadyExists           ErrorCode = "already_exists"
	RelationNotFound        ErrorCode = "relation_not_found"
	SelfSubscription        ErrorCode = "self_subscription"
	InvalidImage            ErrorCode = "invalid_image"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:            0, // No error code - unknown
	InternalServerError:     http.StatusInternalServerError,
	BadRequest:              http.StatusBadRequest,
	ValidationError:         http.StatusBadRequest,
	InvalidAccessToken:      http.StatusUnauthorized,
	ExpiredAccessToken:      http.StatusUnauthorized,
	InvalidCredentials:      http.StatusBadRequest,
	InsufficientPermissions: http.StatusForbidden,
	TooManyRequests:         http.StatusTooManyRequests,
	WeakPassword:            http.StatusBadRequest,
	EmailConflict:           http.StatusConflict,
	UsernameConflict:        http.StatusConflict,
	Conflict:                http.StatusConflict,
	NotFound:                http.StatusNotFound,
	PageNotFound:            http.StatusNotFound,
	RecipeNotFound:          http.StatusNotFound,
	RecipeNotOwned:          http.StatusForbidden,
	IngredientNotFound:      http.StatusNotFound,
	TagNotFound:             http.StatusNotFound,
	UserNotFound:            http.StatusNotFound,
	ImageNotFound:           http.StatusNotFound,
	AlreadyExists:           http.StatusBadRequest,
	RelationNotFound:        http.StatusBadRequest,
	SelfSubscription:        http.StatusBadRequest,
	InvalidImage:            http.StatusBadRequest,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
