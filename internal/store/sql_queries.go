package store

import (
	sq "github.com/Masterminds/squirrel"
)

const documentsTable = "documents"

// documentColumns lists the columns of the documents table in insert order.
var documentColumns = []string{
	"id",
	"ciphertext_b64",
	"iv_b64",
	"salt_b64",
	"auth_tag_b64",
	"kdf_algorithm",
	"kdf_iterations",
	"kdf_key_length",
	"created_at_iso",
	"content_length",
	"dedupe_tag",
}

func buildInsertDocumentQuery(b sq.StatementBuilderType, row documentRow) (string, []any, error) {
	return b.Insert(documentsTable).
		Columns(documentColumns...).
		Values(
			row.ID,
			row.CiphertextB64,
			row.IVB64,
			row.SaltB64,
			row.AuthTagB64,
			row.KDFAlgorithm,
			row.KDFIterations,
			row.KDFKeyLength,
			row.CreatedAtISO,
			row.ContentLength,
			row.DedupeTag,
		).
		ToSql()
}

func buildGetDocumentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildExistsDocumentQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select("1").
		From(documentsTable).
		Where(sq.Eq{"id": id}).
		Limit(1).
		ToSql()
}

// buildFindLiveByDedupeTagQuery relies on created_at_iso being fixed-width
// UTC text, so string comparison is chronological.
func buildFindLiveByDedupeTagQuery(b sq.StatementBuilderType, tag, notBefore string) (string, []any, error) {
	return b.Select(documentColumns...).
		From(documentsTable).
		Where(sq.Eq{"dedupe_tag": tag}).
		Where(sq.Gt{"created_at_iso": notBefore}).
		OrderBy("created_at_iso DESC").
		Limit(1).
		ToSql()
}

func buildDeleteOlderThanQuery(b sq.StatementBuilderType, cutoff string) (string, []any, error) {
	return b.Delete(documentsTable).
		Where(sq.Lt{"created_at_iso": cutoff}).
		ToSql()
}
