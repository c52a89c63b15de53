package service

import (
	"strings"

	"github.com/TalentLink/talentGo/dto"
	"github.com/TalentLink/talentGo/models"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// All input validations should be added here.

func ValidateCreatePostRequest(req *dto.CreatePostRequest) error {
	if len(strings.TrimSpace(req.Post)) == 0 {
		return status.Error(codes.InvalidArgument, "Post text is empty.")
	}

	return nil
}

func ValidateCommentRequest(req *dto.CommentRequest) error {
	if len(req.PostId) == 0 {
		return status.Error(codes.InvalidArgument, "Post id is missing.")
	}
	if len(strings.TrimSpace(req.Content)) == 0 {
		return status.Error(codes.InvalidArgument, "Comment text is empty.")
	}

	return nil
}

func ValidateCreateJobRequest(req *dto.CreateJobRequest) error {
	if len(strings.TrimSpace(req.Title)) == 0 {
		return status.Error(codes.InvalidArgument, "Job title is empty.")
	}
	if len(strings.TrimSpace(req.Description)) == 0 {
		return status.Error(codes.InvalidArgument, "Job description is empty.")
	}

	return nil
}

func ValidateCreateCourseRequest(req *dto.CreateCourseRequest) error {
	if len(strings.TrimSpace(req.Title)) == 0 {
		return status.Error(codes.InvalidArgument, "Course title is empty.")
	}
	if len(strings.TrimSpace(req.Description)) == 0 {
		return status.Error(codes.InvalidArgument, "Course description is empty.")
	}

	return nil
}

func ValidateRole(role string) error {
	switch role {
	case models.RoleUser, models.RoleMentor, models.RoleOrganization:
		return nil
	}
	return status.Error(codes.InvalidArgument, "Unknown role: "+role)
}
