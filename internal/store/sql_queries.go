package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-accounts/models"
)

// psql builds PostgreSQL-flavoured statements with $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the column order every user query selects and scans.
var userColumns = []string{
	"user_id",
	"name",
	"email",
	"phone",
	"country",
	"state",
	"city",
	"password_hash",
	"active",
	"image_path",
	"role_id",
	"created_at",
	"updated_at",
}

func returningUserColumns() string {
	return "RETURNING " + strings.Join(userColumns, ", ")
}

// buildFindUserQuery selects the single user whose column equals value.
func buildFindUserQuery(column string, value any) (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{column: value}).
		ToSql()
}

func buildListUsersQuery() (string, []any, error) {
	return psql.
		Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("user_id").
		ToSql()
}

func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.
		Insert(models.User{}.TableName()).
		Columns("name", "email", "phone", "country", "state", "city", "password_hash", "active", "image_path", "role_id").
		Values(user.Name, user.Email, user.Phone, user.Country, user.State, user.City, user.PasswordHash, user.Active, user.ImagePath, user.RoleID).
		Suffix(returningUserColumns()).
		ToSql()
}

// buildUpdateUserQuery writes only the non-nil fields of update. The
// plaintext Password field is ignored; callers pass the new hash in
// PasswordHash. ok is false when update carries nothing to write.
func buildUpdateUserQuery(id int64, update models.UserUpdate, now time.Time) (query string, args []any, ok bool, err error) {
	set := make(map[string]any, 10)

	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Email != nil {
		set["email"] = *update.Email
	}
	if update.Phone != nil {
		set["phone"] = *update.Phone
	}
	if update.Country != nil {
		set["country"] = *update.Country
	}
	if update.State != nil {
		set["state"] = *update.State
	}
	if update.City != nil {
		set["city"] = *update.City
	}
	if update.PasswordHash != nil {
		set["password_hash"] = *update.PasswordHash
	}
	if update.ImagePath != nil {
		set["image_path"] = *update.ImagePath
	}
	if update.Active != nil {
		set["active"] = *update.Active
	}

	if len(set) == 0 {
		return "", nil, false, nil
	}
	set["updated_at"] = now

	query, args, err = psql.
		Update(models.User{}.TableName()).
		SetMap(set).
		Where(sq.Eq{"user_id": id}).
		Suffix(returningUserColumns()).
		ToSql()

	return query, args, true, err
}

func buildSetActiveQuery(id int64, active bool, now time.Time) (string, []any, error) {
	return psql.
		Update(models.User{}.TableName()).
		Set("active", active).
		Set("updated_at", now).
		Where(sq.Eq{"user_id": id}).
		Suffix(returningUserColumns()).
		ToSql()
}

func buildFindRoleByNameQuery(name string) (string, []any, error) {
	return psql.
		Select("role_id", "name").
		From("roles").
		Where(sq.Eq{"name": name}).
		ToSql()
}
