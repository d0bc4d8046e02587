package entities

// Role is a user's role in the newsroom.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleAuthor     Role = "author"
	RoleSubscriber Role = "subscriber"
)

// Permission is a capability granted by a role, independent of ownership.
type Permission string

const (
	// Posts
	PermissionPostCreate          Permission = "posts.create"
	PermissionPostEditAny         Permission = "posts.edit_any"
	PermissionPostEditOwn         Permission = "posts.edit_own"
	PermissionPostDeleteAny       Permission = "posts.delete_any"
	PermissionPostDeleteOwn       Permission = "posts.delete_own"
	PermissionPostBulkPublish     Permission = "posts.bulk_publish"
	PermissionPostViewUnpublished Permission = "posts.view_unpublished"

	// Users
	PermissionUserManage Permission = "users.manage"
)

// RolePermissions maps each role to its grants.
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPostCreate,
		PermissionPostEditAny,
		PermissionPostEditOwn,
		PermissionPostDeleteAny,
		PermissionPostDeleteOwn,
		PermissionPostBulkPublish,
		PermissionPostViewUnpublished,
		PermissionUserManage,
	},
	RoleEditor: {
		PermissionPostCreate,
		PermissionPostEditAny,
		PermissionPostEditOwn,
		PermissionPostViewUnpublished,
	},
	RoleAuthor: {
		PermissionPostCreate,
		PermissionPostEditOwn,
		PermissionPostDeleteOwn,
	},
	RoleSubscriber: {},
}

// ParseRole returns the role named s and whether it is one of the four roles.
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.IsValid()
}

func (r Role) IsValid() bool {
	_, ok := RolePermissions[r]
	return ok
}

func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
