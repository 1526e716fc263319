// Package session persists the signed-in identity (token and user) between
// runs of the client. Two backends exist: the local SQLite database and Redis.
package session

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/carbid/internal/client/models"
)

// ErrNoSession is returned by Load when nothing has been saved.
var ErrNoSession = errors.New("no saved session")

const (
	keyToken = "token"
	keyUser  = "user"
)

type Repository interface {
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, s models.Session) error
	Clear(ctx context.Context) error
}
