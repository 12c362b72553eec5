package repository

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/stpnv0/SlotBooker/internal/domain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/import.schema.json
var importSchema []byte

var (
	compiledImport *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
	printer        = message.NewPrinter(language.English)
)

// Transfer moves whole collections in and out of the store.
type Transfer struct {
	bookings *BookingRepository
	users    *UserRepository
	services *ServiceRepository
	session  *SessionRepository
	now      Clock
}

func NewTransfer(
	bookings *BookingRepository,
	users *UserRepository,
	services *ServiceRepository,
	session *SessionRepository,
	now Clock,
) *Transfer {
	return &Transfer{
		bookings: bookings,
		users:    users,
		services: services,
		session:  session,
		now:      now,
	}
}

func (t *Transfer) Export(ctx context.Context) (*domain.ExportDocument, error) {
	bookings, err := t.bookings.List(ctx)
	if err != nil {
		return nil, err
	}
	users, err := t.users.List(ctx)
	if err != nil {
		return nil, err
	}
	services, err := t.services.List(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.ExportDocument{
		Bookings:   nonNil(bookings),
		Users:      nonNil(users),
		Services:   nonNil(services),
		ExportedAt: t.now().UTC(),
	}, nil
}

// Decode validates data against the import schema and decodes it. Schema
// violations come back as *domain.ValidationErrors keyed by JSON pointer.
func (t *Transfer) Decode(data []byte) (*domain.ImportDocument, error) {
	schema, err := importSchemaCompiled()
	if err != nil {
		return nil, fmt.Errorf("load import schema: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: import is not valid JSON: %v", domain.ErrValidation, err)
	}

	if err = schema.Validate(inst); err != nil {
		ve, ok := err.(*jsonschema.ValidationError)
		if !ok {
			return nil, fmt.Errorf("validate import: %w", err)
		}
		verr := &domain.ValidationErrors{}
		collectIssues(ve, verr)
		if len(verr.Fields) == 0 {
			verr.Add("", ve.Error())
		}
		return nil, verr
	}

	var doc domain.ImportDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode import: %v", domain.ErrValidation, err)
	}

	return &doc, nil
}

// Apply overwrites every key present in doc. Users must already carry hashes.
// Everything is encoded before the first write, and a failed write puts the
// keys already written back, so an import lands whole or not at all.
func (t *Transfer) Apply(ctx context.Context, doc *domain.ImportDocument) error {
	var writes []pendingWrite

	if doc.Bookings != nil {
		w, err := t.bookings.coll.encode(*doc.Bookings)
		if err != nil {
			return fmt.Errorf("import bookings: %w", err)
		}
		writes = append(writes, w)
	}

	if doc.Users != nil {
		users := make([]*domain.User, 0, len(*doc.Users))
		for _, u := range *doc.Users {
			if u == nil {
				continue
			}
			usr := u.User
			users = append(users, &usr)
		}
		w, err := t.users.coll.encode(users)
		if err != nil {
			return fmt.Errorf("import users: %w", err)
		}
		writes = append(writes, w)
	}

	if doc.Services != nil {
		w, err := t.services.coll.encode(*doc.Services)
		if err != nil {
			return fmt.Errorf("import services: %w", err)
		}
		writes = append(writes, w)
	}

	if err := writeAll(ctx, t.bookings.coll.store, writes); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// Clear drops bookings, users and the session. The catalog is kept.
func (t *Transfer) Clear(ctx context.Context) error {
	if err := t.bookings.coll.clear(ctx); err != nil {
		return err
	}
	if err := t.users.coll.clear(ctx); err != nil {
		return err
	}
	return t.session.Clear(ctx)
}

func importSchemaCompiled() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(importSchema))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err = c.AddResource("import.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledImport, compileErr = c.Compile("import.schema.json")
	})
	return compiledImport, compileErr
}

func collectIssues(ve *jsonschema.ValidationError, out *domain.ValidationErrors) {
	if len(ve.Causes) == 0 {
		path := "/" + strings.Join(ve.InstanceLocation, "/")
		msg := ve.Error()
		if ve.ErrorKind != nil {
			msg = ve.ErrorKind.LocalizedString(printer)
		}
		out.Add(path, msg)
		return
	}

	for _, cause := range ve.Causes {
		collectIssues(cause, out)
	}
}

func nonNil[T any](items []*T) []*T {
	if items == nil {
		return []*T{}
	}
	return items
}
