package service

import (
	"testing"

	"github.com/TalentLink/talentGo/dto"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func assertInvalidArgument(t *testing.T, err error) {
	t.Helper()
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestValidateCreatePostRequest(t *testing.T) {
	assert.NoError(t, ValidateCreatePostRequest(&dto.CreatePostRequest{Post: "hello"}))
	assertInvalidArgument(t, ValidateCreatePostRequest(&dto.CreatePostRequest{Post: ""}))
	assertInvalidArgument(t, ValidateCreatePostRequest(&dto.CreatePostRequest{Post: "   "}))
}

func TestValidateCommentRequest(t *testing.T) {
	assert.NoError(t, ValidateCommentRequest(&dto.CommentRequest{PostId: "p1", Content: "nice"}))
	assertInvalidArgument(t, ValidateCommentRequest(&dto.CommentRequest{Content: "nice"}))
	assertInvalidArgument(t, ValidateCommentRequest(&dto.CommentRequest{PostId: "p1", Content: " "}))
}

func TestValidateCreateJobRequest(t *testing.T) {
	assert.NoError(t, ValidateCreateJobRequest(&dto.CreateJobRequest{Title: "SRE", Description: "on-call"}))
	assertInvalidArgument(t, ValidateCreateJobRequest(&dto.CreateJobRequest{Description: "on-call"}))
	assertInvalidArgument(t, ValidateCreateJobRequest(&dto.CreateJobRequest{Title: "SRE"}))
}

func TestValidateCreateCourseRequest(t *testing.T) {
	assert.NoError(t, ValidateCreateCourseRequest(&dto.CreateCourseRequest{Title: "Go", Description: "intro"}))
	assertInvalidArgument(t, ValidateCreateCourseRequest(&dto.CreateCourseRequest{Description: "intro"}))
	assertInvalidArgument(t, ValidateCreateCourseRequest(&dto.CreateCourseRequest{Title: "Go"}))
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole("user"))
	assert.NoError(t, ValidateRole("mentor"))
	assert.NoError(t, ValidateRole("organization"))
	assertInvalidArgument(t, ValidateRole("admin"))
	assertInvalidArgument(t, ValidateRole(""))
}
