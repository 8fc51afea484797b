package repository

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Fixed texts for failures that carry no configurable template.
const (
	invalidRequestMessage    = "An invalid request was made."
	statementFallbackMessage = "There was an issue processing the statement."
)

// Postgres constraint-violation patterns, matched against the engine's raw
// error text (message line plus DETAIL line). The patterns are specific to
// the wording of the Postgres engine family; swapping the storage engine
// means replacing this table, not the callers.
var (
	postgresDuplicateKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^.*duplicate\s+key.*"(?P<columns>[^"]+)"\s*\n.*Key\s+\((?P<key>.*)\)=\((?P<value>.*)\)\s+already\s+exists.*$`),
		regexp.MustCompile(`^.*duplicate\s+key.*"(?P<columns>[^"]+)"\s*\n.*$`),
	}

	postgresCheckConstraintPatterns = []*regexp.Regexp{
		regexp.MustCompile(`.*new row for relation "(?P<table>.+)" violates check constraint (?P<check_name>.+)`),
	}

	postgresForeignKeyPatterns = []*regexp.Regexp{
		regexp.MustCompile(`.*on table "(?P<table>[^"]+)" violates ` +
			`foreign key constraint "(?P<constraint>[^"]+)".*\n` +
			`DETAIL:  Key \((?P<key>.+)\)=\(.+\) ` +
			`is (not present in|still referenced from) table ` +
			`"(?P<key_table>[^"]+)".`),
	}
)

// integrityPatternGroups is consulted in order; the first matching pattern
// wins. Order matters: duplicate-key text can be a structural subset of the
// other integrity messages.
var integrityPatternGroups = []struct {
	patterns []*regexp.Regexp
	kind     Kind
	key      MessageKey
}{
	{postgresDuplicateKeyPatterns, KindDuplicateKey, MsgDuplicateKey},
	{postgresCheckConstraintPatterns, KindIntegrity, MsgCheckConstraint},
	{postgresForeignKeyPatterns, KindForeignKey, MsgForeignKey},
}

// wrapError is the single seam converting storage-layer failures into the
// repository error taxonomy. Every repository operation routes its result
// through here, so callers see uniform typed errors regardless of which
// constraint fired or how the driver worded it.
func wrapError(err error, messages Messages) error {
	if err == nil {
		return nil
	}

	// Already classified (e.g. a not-found raised inside GetOne).
	var repoErr *Error
	if errors.As(err, &repoErr) {
		return err
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewError(KindNotFound, messages.render(MsgNotFound, err), err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return classifyPostgres(pgErr, err, messages)
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return NewError(KindDuplicateKey, messages.render(MsgDuplicateKey, err), err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return NewError(KindForeignKey, messages.render(MsgForeignKey, err), err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return NewError(KindIntegrity, messages.render(MsgCheckConstraint, err), err)
	case errors.Is(err, gorm.ErrInvalidTransaction),
		errors.Is(err, gorm.ErrInvalidField),
		errors.Is(err, gorm.ErrInvalidValue),
		errors.Is(err, gorm.ErrInvalidData),
		errors.Is(err, gorm.ErrUnsupportedRelation):
		return NewError(KindInvalidRequest, invalidRequestMessage, err)
	}

	// Dialectors that do not translate constraint failures (e.g. the pure-Go
	// SQLite driver) surface them as plain driver errors; fall back to
	// sniffing the error text.
	if kind, key, ok := sniffConstraintText(err.Error()); ok {
		return NewError(kind, messages.render(key, err), err)
	}

	return NewError(KindOther, messages.render(MsgOther, err), err)
}

// classifyPostgres dispatches a Postgres error by SQLSTATE class, then
// refines integrity-class failures with the pattern table.
func classifyPostgres(pgErr *pgconn.PgError, cause error, messages Messages) *Error {
	code := pgErr.Code

	switch {
	case pgerrcode.IsIntegrityConstraintViolation(code):
		return classifyIntegrity(pgErr, cause, messages)

	case pgerrcode.IsDataException(code):
		// Statement-level data failures (e.g. numeric overflow on a decimal
		// column) stay integrity errors, carrying the engine's detail when
		// it exposes one.
		msg := statementFallbackMessage
		if pgErr.Detail != "" {
			msg = pgErr.Detail
		}
		return NewError(KindIntegrity, msg, cause)

	case pgerrcode.IsSyntaxErrororAccessRuleViolation(code):
		return NewError(KindInvalidRequest, invalidRequestMessage, cause)

	default:
		return NewError(KindOther, messages.render(MsgOther, cause), cause)
	}
}

// classifyIntegrity matches the engine text against the ordered pattern
// groups; unmatched text degrades to a generic integrity failure rather than
// failing the classification.
func classifyIntegrity(pgErr *pgconn.PgError, cause error, messages Messages) *Error {
	detail := engineDetail(pgErr)
	for _, group := range integrityPatternGroups {
		for _, re := range group.patterns {
			if re.MatchString(detail) {
				return NewError(group.kind, messages.render(group.key, cause), cause)
			}
		}
	}
	return NewError(KindIntegrity, messages.render(MsgIntegrity, cause), cause)
}

// engineDetail rebuilds the multi-line error text the engine emits: the
// message line followed by the DETAIL line, which is the form the pattern
// table expects.
func engineDetail(pgErr *pgconn.PgError) string {
	if pgErr.Detail == "" {
		return pgErr.Message + "\n"
	}
	return pgErr.Message + "\nDETAIL:  " + pgErr.Detail
}

// sniffConstraintText classifies constraint failures by substring for
// drivers that expose neither a SQLSTATE nor a translated gorm error.
func sniffConstraintText(text string) (Kind, MessageKey, bool) {
	msg := strings.ToLower(text)
	switch {
	case strings.Contains(msg, "unique constraint"),
		strings.Contains(msg, "duplicate key"),
		strings.Contains(msg, "duplicate entry"):
		return KindDuplicateKey, MsgDuplicateKey, true
	case strings.Contains(msg, "foreign key constraint"):
		return KindForeignKey, MsgForeignKey, true
	case strings.Contains(msg, "check constraint"):
		return KindIntegrity, MsgCheckConstraint, true
	}
	return KindOther, "", false
}
