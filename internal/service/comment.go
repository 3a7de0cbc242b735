package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forkful/backend/internal/models"
)

// CommentService manages the comment threads embedded in a recipe.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// ListComments returns a recipe's comment thread.
func (s *CommentService) ListComments(ctx context.Context, recipeID uuid.UUID) (models.CommentList, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe.Comments, nil
}

// AddComment appends a comment authored by the caller.
func (s *CommentService) AddComment(ctx context.Context, recipeID uuid.UUID, author, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	comment := models.Comment{
		ID:        uuid.New(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
		Replies:   []models.Reply{},
	}

	err := s.mutateComments(ctx, recipeID, func(comments models.CommentList) (models.CommentList, error) {
		return append(comments, comment), nil
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// AddReply appends a reply to an existing comment.
func (s *CommentService) AddReply(ctx context.Context, recipeID, commentID uuid.UUID, author, text string) (*models.Reply, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	reply := models.Reply{
		ID:        uuid.New(),
		Author:    author,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := s.mutateComments(ctx, recipeID, func(comments models.CommentList) (models.CommentList, error) {
		for i := range comments {
			if comments[i].ID == commentID {
				comments[i].Replies = append(comments[i].Replies, reply)
				return comments, nil
			}
		}
		return nil, ErrCommentNotFound
	})
	if err != nil {
		return nil, err
	}
	return &reply, nil
}

// DeleteComment removes a comment and its replies. Only the original author
// may delete it.
func (s *CommentService) DeleteComment(ctx context.Context, recipeID, commentID uuid.UUID, caller string) error {
	return s.mutateComments(ctx, recipeID, func(comments models.CommentList) (models.CommentList, error) {
		for i := range comments {
			if comments[i].ID != commentID {
				continue
			}
			if comments[i].Author != caller {
				return nil, ErrUnauthorized
			}
			return append(comments[:i], comments[i+1:]...), nil
		}
		return nil, ErrCommentNotFound
	})
}

// DeleteReply removes a reply. Only the reply's author may delete it.
func (s *CommentService) DeleteReply(ctx context.Context, recipeID, commentID, replyID uuid.UUID, caller string) error {
	return s.mutateComments(ctx, recipeID, func(comments models.CommentList) (models.CommentList, error) {
		for i := range comments {
			if comments[i].ID != commentID {
				continue
			}
			replies := comments[i].Replies
			for j := range replies {
				if replies[j].ID != replyID {
					continue
				}
				if replies[j].Author != caller {
					return nil, ErrUnauthorized
				}
				comments[i].Replies = append(replies[:j], replies[j+1:]...)
				return comments, nil
			}
			return nil, ErrReplyNotFound
		}
		return nil, ErrCommentNotFound
	})
}

// RemoveComment deletes a comment without an author check. This is the
// moderation path; route-level admin gating is the caller's responsibility.
func (s *CommentService) RemoveComment(ctx context.Context, recipeID, commentID uuid.UUID) error {
	return s.mutateComments(ctx, recipeID, func(comments models.CommentList) (models.CommentList, error) {
		for i := range comments {
			if comments[i].ID == commentID {
				return append(comments[:i], comments[i+1:]...), nil
			}
		}
		return nil, ErrCommentNotFound
	})
}

// mutateComments applies fn to the recipe's comment list under the same
// locked read-modify-write used for ratings, so concurrent thread edits on
// one recipe serialize instead of clobbering each other.
func (s *CommentService) mutateComments(ctx context.Context, recipeID uuid.UUID, fn func(models.CommentList) (models.CommentList, error)) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		query := tx
		if tx.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var recipe models.Recipe
		if err := query.First(&recipe, "id = ?", recipeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRecipeNotFound
			}
			return err
		}

		comments, err := fn(recipe.Comments)
		if err != nil {
			return err
		}

		return tx.Model(&models.Recipe{}).Where("id = ?", recipeID).
			Update("comments", comments).Error
	})
}
