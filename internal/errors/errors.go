package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity  string
	Message string // user-facing text, overrides the default "<entity> not found"
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InternalError hides an unexpected failure behind a generic message.
// Error() never includes the cause; use Unwrap to log it.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	return e.Message
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound    = &NotFoundError{Entity: "team"}
	ErrPokemonNotFound = &NotFoundError{Entity: "pokemon"}
)

// User-facing messages. They are part of the HTTP contract, keep them stable.
const (
	MsgInvalidPokemonName = "An item in the list cannot consist solely of a space or special characters."
	MsgNoTeams            = "No teams have been created yet."
	MsgNoTeamsForUser     = "This user does not have a team Pokemon registered"
	MsgTeamNotExists      = "This team does not exist."

	MsgUserEmpty          = "User's name cannot be empty"
	MsgUserBlankEdges     = "User name cannot start or end with spaces, and cannot consist solely of spaces."
	MsgTeamListEmpty      = "The Pokémon list cannot be empty."
	MsgTeamItemEmpty      = "A list item cannot be empty."
	MsgTeamItemsNotUnique = "Each Pokémon in the list must be unique."
	MsgInvalidRequestBody = "Request body must be a JSON object with a string \"user\" and a string array \"team\"."

	MsgCreateTeamFailed    = "Failed to create team. Please try again later."
	MsgListAllTeamsFailed  = "An error occurred while retrieving teams."
	MsgListUserTeamsFailed = "Failed to retrieve teams. Please try again later."
	MsgGetTeamFailed       = "Failed to retrieve team. Please try again later."
	MsgPokemonLookupFailed = "Failed to look up pokemon. Please try again later."
)

// PokemonsNotFoundMessage lists every unresolved raw name in one user-facing sentence
func PokemonsNotFoundMessage(names []string) string {
	return fmt.Sprintf("Pokemon(s): %s was/were not found. For this reason, the team can not be created. "+
		"Please, check your Internet Connection, and also, ensure that the names of the Pokémon are spelled correctly.",
		strings.Join(names, " and "))
}

// Business Logic Errors
var (
	ErrInvalidTeamID      = errors.New("invalid team id")
	ErrCatalogUnavailable = errors.New("pokemon catalog unavailable")
	ErrUnknownStoreDriver = errors.New("unknown store driver")
	ErrSeedFileHasNoTeams = errors.New("seed file contains no teams")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewNotFoundErrorWithMessage creates a NotFoundError carrying a user-facing message
func NewNotFoundErrorWithMessage(entity, message string) error {
	return &NotFoundError{Entity: entity, Message: message}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInternalError wraps err behind a generic user-facing message
func NewInternalError(message string, err error) error {
	return &InternalError{Message: message, Err: err}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// PublicMessage returns the text that may be shown to API callers.
// ValidationError exposes only its message, without the "validation error:" prefix.
func PublicMessage(err error) string {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	var notFoundErr *NotFoundError
	if errors.As(err, &notFoundErr) {
		return notFoundErr.Error()
	}
	var internalErr *InternalError
	if errors.As(err, &internalErr) {
		return internalErr.Message
	}
	return "Internal server error"
}
