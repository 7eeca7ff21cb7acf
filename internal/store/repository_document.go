package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-seal-doc/internal/logger"
	"github.com/MKhiriev/go-seal-doc/models"
)

// documentRepository is the SQL implementation of [DocumentRepository]. It
// serves both PostgreSQL and SQLite; the embedded [*DB] supplies the
// placeholder format and the driver error classifier.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext]. Only document ids are logged, never payloads.
type documentRepository struct {
	*DB
	logger *logger.Logger
}

// NewDocumentRepository constructs a [DocumentRepository] backed by db.
func NewDocumentRepository(db *DB, logger *logger.Logger) DocumentRepository {
	logger.Debug().Msg("creating document repository")
	return &documentRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *documentRepository) Exists(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsDocumentQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Exists").Msg("failed to create query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found int
	err = r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.GetContext(ctx, &found, query, args...)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		log.Err(err).Str("func", "documentRepository.Exists").Str("document_id", id).Msg("failed to check document existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

func (r *documentRepository) Get(ctx context.Context, id string) (models.EncryptedDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetDocumentQuery(r.builder(), id)
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Get").Msg("failed to create query")
		return models.EncryptedDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "documentRepository.Get", query, args)
}

func (r *documentRepository) Put(ctx context.Context, doc models.EncryptedDocument) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertDocumentQuery(r.builder(), newDocumentRow(doc))
	if err != nil {
		log.Err(err).Str("func", "documentRepository.Put").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		if r.errorClassificator.IsUniqueViolation(err) {
			log.Warn().Str("func", "documentRepository.Put").Str("document_id", doc.ID).Msg("document id collision")
			return ErrDuplicateID
		}
		log.Err(err).Str("func", "documentRepository.Put").Str("document_id", doc.ID).Msg("failed to insert document")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *documentRepository) FindLiveByDedupeTag(ctx context.Context, tag string, notBefore time.Time) (models.EncryptedDocument, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindLiveByDedupeTagQuery(r.builder(), tag, models.FormatTimestamp(notBefore))
	if err != nil {
		log.Err(err).Str("func", "documentRepository.FindLiveByDedupeTag").Msg("failed to create query")
		return models.EncryptedDocument{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.getOne(ctx, "documentRepository.FindLiveByDedupeTag", query, args)
}

func (r *documentRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOlderThanQuery(r.builder(), models.FormatTimestamp(cutoff))
	if err != nil {
		log.Err(err).Str("func", "documentRepository.DeleteOlderThan").Msg("failed to create query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var result sql.Result
	err = r.withRetry(ctx, func(ctx context.Context) error {
		var execErr error
		result, execErr = r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "documentRepository.DeleteOlderThan").Msg("failed to delete expired documents")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "documentRepository.DeleteOlderThan").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return deleted, nil
}

// getOne runs a single-row select and decodes the row.
func (r *documentRepository) getOne(ctx context.Context, funcName, query string, args []any) (models.EncryptedDocument, error) {
	log := logger.FromContext(ctx)

	var row documentRow
	err := r.withRetry(ctx, func(ctx context.Context) error {
		return r.DB.GetContext(ctx, &row, query, args...)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.EncryptedDocument{}, ErrDocumentNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return models.EncryptedDocument{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	doc, err := row.toDocument()
	if err != nil {
		log.Err(err).Str("func", funcName).Str("document_id", row.ID).Msg("failed to decode document row")
		return models.EncryptedDocument{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return doc, nil
}
