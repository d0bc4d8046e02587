package entities

// Authorization rules. Each rule is a pure predicate over the acting user
// and the resource; callers turn a false result into a forbidden error.
// A nil actor is an anonymous caller and is denied everything.

// CanCreatePost allows admins, editors and authors.
func CanCreatePost(actor *User) bool {
	return actor != nil && actor.HasPermission(PermissionPostCreate)
}

// CanEditPost allows admins and editors on any post, authors on their own.
func CanEditPost(actor *User, post *Post) bool {
	if actor == nil || post == nil {
		return false
	}
	if actor.HasPermission(PermissionPostEditAny) {
		return true
	}
	return actor.HasPermission(PermissionPostEditOwn) && actor.ID == post.AuthorID
}

// CanDeletePost allows admins on any post, authors on their own. Editors
// may edit but not delete other people's posts.
func CanDeletePost(actor *User, post *Post) bool {
	if actor == nil || post == nil {
		return false
	}
	if actor.HasPermission(PermissionPostDeleteAny) {
		return true
	}
	return actor.HasPermission(PermissionPostDeleteOwn) && actor.ID == post.AuthorID
}

func CanBulkPublish(actor *User) bool {
	return actor != nil && actor.HasPermission(PermissionPostBulkPublish)
}

// CanListUnpublished allows listing drafts, pending and archived posts of
// every author.
func CanListUnpublished(actor *User) bool {
	return actor != nil && actor.HasPermission(PermissionPostViewUnpublished)
}

func CanManageUsers(actor *User) bool {
	return actor != nil && actor.HasPermission(PermissionUserManage)
}

// CanViewUser allows admins and the user themself.
func CanViewUser(actor *User, targetID string) bool {
	return actor != nil && (CanManageUsers(actor) || actor.ID == targetID)
}

// CanEditUser allows admins and the user themself.
func CanEditUser(actor *User, targetID string) bool {
	return CanViewUser(actor, targetID)
}

// CanChangeRoleOrStatus is admin only, even on the admin's own account.
func CanChangeRoleOrStatus(actor *User) bool {
	return CanManageUsers(actor)
}

// CanDeleteUser allows admins on accounts other than their own.
func CanDeleteUser(actor *User, targetID string) bool {
	return CanManageUsers(actor) && actor.ID != targetID
}
