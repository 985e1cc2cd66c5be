// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-username-changer/models"
)

const (
	usersTable            = "users"
	networkAdminsTable    = "network_admins"
	capabilitiesTable     = "user_capabilities"
	attributionTermsTable = "attribution_terms"
	attributionItemsTable = "attribution_items"
)

var userColumns = []string{"user_id", "login", "slug", "display_name", "email", "created_at"}

func userSelect(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).From(usersTable)
}

func buildSelectUserByLoginQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return userSelect(b).Where(sq.Eq{"login": login}).ToSql()
}

func buildSelectUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return userSelect(b).Where(sq.Eq{"user_id": userID}).ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return userSelect(b).OrderBy("login ASC").ToSql()
}

// buildUpdateUserFieldsQuery sets only the non-nil fields, in login, slug,
// display_name order, and returns the updated row.
func buildUpdateUserFieldsQuery(b sq.StatementBuilderType, userID int64, fields models.UserFields) (string, []any, error) {
	if fields.IsEmpty() {
		return "", nil, ErrNoFieldsToUpdate
	}

	update := b.Update(usersTable)
	if fields.Login != nil {
		update = update.Set("login", *fields.Login)
	}
	if fields.Slug != nil {
		update = update.Set("slug", *fields.Slug)
	}
	if fields.DisplayName != nil {
		update = update.Set("display_name", *fields.DisplayName)
	}

	return update.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, login, slug, display_name, email, created_at").
		ToSql()
}

func buildGrantNetworkPrivilegeQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Insert(networkAdminsTable).
		Columns("login").
		Values(login).
		Suffix("ON CONFLICT (login) DO NOTHING").
		ToSql()
}

func buildRevokeNetworkPrivilegeQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Delete(networkAdminsTable).Where(sq.Eq{"login": login}).ToSql()
}

func buildCountNetworkPrivilegeQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("COUNT(*)").From(networkAdminsTable).Where(sq.Eq{"login": login}).ToSql()
}

func buildSelectNetworkAdminsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("login").From(networkAdminsTable).OrderBy("login ASC").ToSql()
}

func buildCountCapabilityQuery(b sq.StatementBuilderType, userID int64, capability string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(capabilitiesTable).
		Where(sq.Eq{"user_id": userID, "capability": capability}).
		ToSql()
}

func buildSelectAttributedItemsQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("i.item_id").
		From(attributionItemsTable + " i").
		Join(attributionTermsTable + " t ON t.term_id = i.term_id").
		Where(sq.Eq{"t.login": login}).
		OrderBy("i.item_id ASC").
		ToSql()
}

func buildEnsureAttributionTermQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Insert(attributionTermsTable).
		Columns("login").
		Values(login).
		Suffix("ON CONFLICT (login) DO NOTHING").
		ToSql()
}

func buildSelectAttributionTermIDQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Select("term_id").From(attributionTermsTable).Where(sq.Eq{"login": login}).ToSql()
}

func buildLinkAttributionQuery(b sq.StatementBuilderType, itemID, termID int64) (string, []any, error) {
	return b.Insert(attributionItemsTable).
		Columns("item_id", "term_id").
		Values(itemID, termID).
		Suffix("ON CONFLICT (item_id, term_id) DO NOTHING").
		ToSql()
}

func buildDeleteAttributionLinksQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	terms := b.Select("term_id").From(attributionTermsTable).Where(sq.Eq{"login": login})
	sub, args, err := terms.PlaceholderFormat(sq.Question).ToSql()
	if err != nil {
		return "", nil, err
	}

	return b.Delete(attributionItemsTable).
		Where(sq.Expr("term_id IN ("+sub+")", args...)).
		ToSql()
}

func buildDeleteAttributionTermQuery(b sq.StatementBuilderType, login string) (string, []any, error) {
	return b.Delete(attributionTermsTable).Where(sq.Eq{"login": login}).ToSql()
}
