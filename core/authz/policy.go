package authz

import "github.com/pkg/errors"

// The authorization model: one static policy table mapping
// resource × action → role allow-set, consulted by a single gate. Ownership
// rules are declared per resource/action next to it rather than re-derived
// inline in every handler.

type Resource string

const (
	ResourceUser       Resource = "user"
	ResourceCourse     Resource = "course"
	ResourceClass      Resource = "class"
	ResourceFaculty    Resource = "faculty"
	ResourceLecture    Resource = "lecture"
	ResourceFeedback   Resource = "feedback"
	ResourceRating     Resource = "rating"
	ResourceAssignment Resource = "assignment"
	ResourceReport     Resource = "report"
)

type Action string

const (
	ActionList         Action = "list"
	ActionListAll      Action = "list_all" // unscoped pick-lists for the lecture form
	ActionListByClass  Action = "list_by_class"
	ActionListByCourse Action = "list_by_course"
	ActionListOwn      Action = "list_own"
	ActionRead         Action = "read"
	ActionReadOwn      Action = "read_own"
	ActionCreate       Action = "create"
	ActionUpdate       Action = "update"
	ActionDelete       Action = "delete"
)

var (
	ErrForbidden     = errors.New("permission denied")
	ErrUnauthorized  = errors.New("user not authenticated")
	ErrUnknownPolicy = errors.New("no policy declared for operation")
)

var anyAuthenticated = []Role{RoleAdmin, RoleStudent, RoleLecturer, RolePrincipalLecturer, RoleProgramLeader}

// policy is the single source of truth for role allow-sets. Registration is
// unauthenticated and therefore absent; an operation missing here is denied.
var policy = map[Resource]map[Action][]Role{
	ResourceUser: {
		ActionList: {RoleAdmin, RolePrincipalLecturer},
		ActionRead: anyAuthenticated,
	},
	ResourceCourse: {
		ActionList:         {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionListAll:      {RoleAdmin, RolePrincipalLecturer, RoleLecturer},
		ActionRead:         {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionCreate:       {RoleProgramLeader},
		ActionUpdate:       {RoleProgramLeader},
		ActionDelete:       {RoleProgramLeader},
		ActionListByCourse: {RoleAdmin, RolePrincipalLecturer}, // lectures under a course
	},
	ResourceClass: {
		ActionList:        anyAuthenticated,
		ActionListAll:     {RoleAdmin, RolePrincipalLecturer, RoleLecturer},
		ActionRead:        anyAuthenticated,
		ActionCreate:      {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionUpdate:      {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionDelete:      {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionListByClass: {RoleAdmin, RolePrincipalLecturer, RoleLecturer, RoleStudent}, // lectures under a class
	},
	ResourceFaculty: {
		ActionList: {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
		ActionRead: {RoleAdmin, RolePrincipalLecturer, RoleProgramLeader},
	},
	ResourceLecture: {
		ActionList:   anyAuthenticated,
		ActionRead:   {RoleAdmin, RolePrincipalLecturer, RoleLecturer, RoleStudent},
		ActionCreate: {RoleLecturer},
		ActionUpdate: {RoleLecturer, RoleAdmin},
		ActionDelete: {RoleLecturer, RoleAdmin},
	},
	ResourceFeedback: {
		ActionList:   {RoleAdmin, RolePrincipalLecturer, RoleLecturer, RoleStudent},
		ActionCreate: {RoleLecturer, RolePrincipalLecturer},
	},
	ResourceRating: {
		ActionRead:    anyAuthenticated, // aggregate
		ActionReadOwn: {RoleStudent},
		ActionListOwn: {RoleStudent},
		ActionCreate:  {RoleStudent},
		ActionUpdate:  {RoleStudent}, // upsert; same endpoint as create
	},
	ResourceAssignment: {
		ActionList:   {RoleAdmin, RolePrincipalLecturer},
		ActionCreate: {RoleAdmin, RolePrincipalLecturer},
	},
	ResourceReport: {
		ActionRead:   {RoleProgramLeader},
		ActionCreate: {RoleProgramLeader},
	},
}

// ownerExempt declares, for owner-scoped resources, the roles that bypass
// the ownership comparison per action. A present-but-empty set means
// owner-only; an absent action carries no ownership rule at all.
var ownerExempt = map[Resource]map[Action][]Role{
	ResourceCourse: {
		ActionRead:   {RoleAdmin, RolePrincipalLecturer},
		ActionUpdate: {},
		ActionDelete: {},
	},
	ResourceLecture: {
		ActionRead:   {RoleAdmin, RolePrincipalLecturer, RoleStudent},
		ActionUpdate: {RoleAdmin},
		ActionDelete: {RoleAdmin},
	},
	ResourceReport: {
		ActionRead:   {},
		ActionCreate: {},
	},
}

// listScoped declares the roles whose list queries are narrowed to their own
// rows at query-construction time.
var listScoped = map[Resource][]Role{
	ResourceCourse:  {RoleProgramLeader},
	ResourceLecture: {RoleLecturer},
}

func roleIn(role Role, roles []Role) bool {
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}

// Allowed reports whether the role's allow-set for the operation contains
// the role. Unknown operations are denied.
func Allowed(role Role, res Resource, act Action) bool {
	actions, ok := policy[res]
	if !ok {
		return false
	}
	return roleIn(role, actions[act])
}

// Authorize applies the role check; it is the only gate handlers go through.
func Authorize(actor Actor, res Resource, act Action) error {
	if !Allowed(actor.Role, res, act) {
		return ErrForbidden
	}
	return nil
}

// AuthorizeOwner applies the role check, then the resource's ownership rule:
// unless the actor's role is exempt for this action, the actor must own the
// row. Failures carry no resource detail.
func AuthorizeOwner(actor Actor, res Resource, act Action, ownerID int) error {
	if err := Authorize(actor, res, act); err != nil {
		return err
	}
	exempt, ok := ownerExempt[res][act]
	if !ok {
		return nil
	}
	if roleIn(actor.Role, exempt) {
		return nil
	}
	if actor.ID != ownerID {
		return ErrForbidden
	}
	return nil
}

// ListScope returns the owner id the actor's list queries must be narrowed
// to, if any. Scoping happens in the query filter, never by post-filtering a
// full result set.
func ListScope(actor Actor, res Resource) (ownerID int, scoped bool) {
	if roleIn(actor.Role, listScoped[res]) {
		return actor.ID, true
	}
	return 0, false
}

// NotFoundVisible decides between "not found" and "permission denied" for an
// absent row: callers whose role may anyway list the resource learn the row
// does not exist; everyone else gets the uniform denial.
func NotFoundVisible(actor Actor, res Resource) bool {
	return Allowed(actor.Role, res, ActionList)
}
