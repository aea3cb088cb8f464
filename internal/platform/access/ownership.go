// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package access

import (
	"github.com/taibuivan/learnsnap/internal/platform/apperr"
	"github.com/taibuivan/learnsnap/internal/platform/sec"
)

// CheckOwnership permits the resource owner or any admin to mutate a resource.
//
// It runs inside the owning business operation, after the route policy.
func CheckOwnership(identity sec.Identity, ownerUserID string) error {
	if !identity.IsAuthenticated() {
		return apperr.Unauthenticated("Authentication required")
	}

	if identity.Role == sec.RoleAdmin {
		return nil
	}

	if ownerUserID == "" || identity.UserID != ownerUserID {
		return apperr.Forbidden("Only the owner or an admin may modify this resource")
	}

	return nil
}
