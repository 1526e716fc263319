package services

import (
	"github.com/dmitrijs2005/carbid/internal/client/api"
	"github.com/dmitrijs2005/carbid/internal/client/store"
)

// fail records err on the slice and returns it unchanged.
func fail(st *store.Store, sl store.Slice, op store.Op, err error) error {
	st.Fail(sl, op, errMessage(err))
	return err
}

// errMessage is the text shown for err: the backend message when there is
// one, the error text otherwise.
func errMessage(err error) string {
	return api.Message(err)
}
