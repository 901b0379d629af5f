package attachmentsrepobridge

import (
	"github.com/jrazmi/taskboard/core/repositories/attachmentsrepo"
)

// MarshalCreateToRepository converts bridge create input to repository input
func MarshalCreateToRepository(input CreateAttachmentInput) attachmentsrepo.CreateAttachment {
	return attachmentsrepo.CreateAttachment{
		CommentID: *input.CommentID,
		FileName:  input.FileName,
		Type:      input.Type,
		SizeKB:    input.SizeKB,
		CreatedAt: input.CreatedAt,
		IsVisible: input.IsVisible,
	}
}

// MarshalUpdateToRepository converts bridge update input to repository input
func MarshalUpdateToRepository(input UpdateAttachmentInput) attachmentsrepo.UpdateAttachment {
	return attachmentsrepo.UpdateAttachment{
		FileName:  input.FileName,
		Type:      input.Type,
		SizeKB:    input.SizeKB,
		IsVisible: input.IsVisible,
	}
}
