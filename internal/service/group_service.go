package service

import (
	"context"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/splitz/ledger/internal/events"
	"github.com/splitz/ledger/internal/metrics"
	"github.com/splitz/ledger/internal/models"
	"github.com/splitz/ledger/internal/storage"
	"github.com/splitz/ledger/pkg/api"
)

// GroupService implements the Connect GroupService.
type GroupService struct {
	store  storage.Store
	notify notifier
}

var _ api.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService with the given storage backend.
// A nil publisher drops events.
func NewGroupService(store storage.Store, publisher events.Publisher, m *metrics.Metrics) *GroupService {
	return &GroupService{store: store, notify: newNotifier(publisher, m)}
}

// CreateGroup creates a new group with the caller as its admin.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "CreateGroup request received", "name", req.Msg.Name, "user_id", userID)

	name := strings.TrimSpace(req.Msg.Name)
	if name == "" {
		return nil, toConnectError(ctx, "CreateGroup", validationf("group name is required"))
	}

	group := &models.Group{
		Name:        name,
		Description: req.Msg.Description,
		CreatedBy:   userID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, toConnectError(ctx, "CreateGroup", err)
	}

	members, err := s.store.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(ctx, "CreateGroup", err)
	}

	slog.InfoContext(ctx, "Group created", "group_id", group.ID)

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group, members)}), nil
}

// GetGroup retrieves a group and its members. Only members may read it.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := requireMember(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "GetGroup", err)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(ctx, "GetGroup", err)
	}
	members, err := s.store.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(ctx, "GetGroup", err)
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group, members)}), nil
}

// ListGroups lists the groups the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}

	memberships, err := s.store.ListMembershipsByUser(ctx, userID)
	if err != nil {
		return nil, toConnectError(ctx, "ListGroups", err)
	}

	groups := make([]api.GroupSummary, len(memberships))
	for i, m := range memberships {
		groups[i] = api.GroupSummary{ID: m.GroupID, Name: m.GroupName}
	}

	slog.DebugContext(ctx, "ListGroups successful", "user_id", userID, "count", len(groups))

	return connect.NewResponse(&api.ListGroupsResponse{Groups: groups}), nil
}

// UpdateGroup renames a group or changes its description. Only admins may
// update a group.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "UpdateGroup request received", "group_id", req.Msg.GroupID)

	if err := requireAdmin(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "UpdateGroup", err)
	}
	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, toConnectError(ctx, "UpdateGroup", err)
	}

	if req.Msg.Name != nil {
		group.Name = strings.TrimSpace(*req.Msg.Name)
		if group.Name == "" {
			return nil, toConnectError(ctx, "UpdateGroup", validationf("group name must not be empty"))
		}
	}
	if req.Msg.Description != nil {
		group.Description = *req.Msg.Description
	}

	if err := s.store.UpdateGroup(ctx, group); err != nil {
		return nil, toConnectError(ctx, "UpdateGroup", err)
	}
	members, err := s.store.ListMembers(ctx, group.ID)
	if err != nil {
		return nil, toConnectError(ctx, "UpdateGroup", err)
	}

	s.notify.publish(ctx, events.New(events.GroupUpdated, group.ID, group.ID, userID, map[string]string{
		"name": group.Name,
	}))

	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(group, members)}), nil
}

// DeleteGroup removes a group with all of its expenses and settlements. Only
// admins may delete a group. Balance reads that started before the delete
// report the group as skipped.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "DeleteGroup request received", "group_id", req.Msg.GroupID)

	if err := requireAdmin(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "DeleteGroup", err)
	}
	if err := s.store.DeleteGroup(ctx, req.Msg.GroupID); err != nil {
		return nil, toConnectError(ctx, "DeleteGroup", err)
	}

	slog.InfoContext(ctx, "Group deleted", "group_id", req.Msg.GroupID)
	s.notify.publish(ctx, events.New(events.GroupDeleted, req.Msg.GroupID, req.Msg.GroupID, userID, nil))

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// AddMember adds a user to a group. Only admins may add members.
func (s *GroupService) AddMember(ctx context.Context, req *connect.Request[api.AddMemberRequest]) (*connect.Response[api.AddMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "AddMember request received",
		"group_id", req.Msg.GroupID,
		"member_id", req.Msg.UserID,
	)

	if req.Msg.UserID <= 0 {
		return nil, toConnectError(ctx, "AddMember", validationf("user_id must be positive"))
	}
	role, err := models.ParseGroupRole(req.Msg.Role)
	if err != nil {
		return nil, toConnectError(ctx, "AddMember", validationf("%v", err))
	}
	if err := requireAdmin(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "AddMember", err)
	}

	member := &models.GroupMember{GroupID: req.Msg.GroupID, UserID: req.Msg.UserID, Role: role}
	if err := s.store.AddMember(ctx, member); err != nil {
		return nil, toConnectError(ctx, "AddMember", err)
	}

	return s.groupResponse(ctx, req.Msg.GroupID)
}

// RemoveMember removes a user from a group. Only admins may remove members.
// The user's past expenses and settlements keep counting toward balances.
func (s *GroupService) RemoveMember(ctx context.Context, req *connect.Request[api.RemoveMemberRequest]) (*connect.Response[api.RemoveMemberResponse], error) {
	userID, err := callerID(ctx)
	if err != nil {
		return nil, err
	}
	slog.InfoContext(ctx, "RemoveMember request received",
		"group_id", req.Msg.GroupID,
		"member_id", req.Msg.UserID,
	)

	if err := requireAdmin(ctx, s.store, req.Msg.GroupID, userID); err != nil {
		return nil, toConnectError(ctx, "RemoveMember", err)
	}
	if err := s.store.RemoveMember(ctx, req.Msg.GroupID, req.Msg.UserID); err != nil {
		return nil, toConnectError(ctx, "RemoveMember", err)
	}

	return connect.NewResponse(&api.RemoveMemberResponse{}), nil
}

func (s *GroupService) groupResponse(ctx context.Context, groupID int64) (*connect.Response[api.AddMemberResponse], error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, toConnectError(ctx, "AddMember", err)
	}
	members, err := s.store.ListMembers(ctx, groupID)
	if err != nil {
		return nil, toConnectError(ctx, "AddMember", err)
	}
	return connect.NewResponse(&api.AddMemberResponse{Group: toAPIGroup(group, members)}), nil
}
