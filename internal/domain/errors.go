package domain

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrProfileNotFound      = errors.New("profile not found")
	ErrProfileAlreadyExists = errors.New("profile already exists")
	ErrProfileHidden        = errors.New("profile is hidden")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrCannotChatSelf       = errors.New("cannot open a chat with yourself")
	ErrCannotReactSelf      = errors.New("cannot like or pass your own profile")
)
