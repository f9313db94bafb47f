package storage

import (
	"context"

	"github.com/mcoot/feastgame/internal/model"
)

// Storage defines the interface for session state
type Storage interface {
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error
	ListSessions(ctx context.Context) ([]model.SessionID, error)
}
