package commentsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/commentsrepo"
)

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateCommentInput) commentsrepo.CreateComment {
	return commentsrepo.CreateComment{
		TaskID:    *input.TaskID,
		Author:    input.Author,
		Message:   input.Message,
		CreatedAt: input.CreatedAt,
		IsEdit:    input.IsEdit,
		Rating:    input.Rating,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateCommentInput) commentsrepo.UpdateComment {
	return commentsrepo.UpdateComment{
		Author:  input.Author,
		Message: input.Message,
		IsEdit:  input.IsEdit,
		Rating:  input.Rating,
	}
}
