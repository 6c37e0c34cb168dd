package service

import (
	"context"
	"log"
	"strings"

	"microtwit/internal/model"
	"microtwit/internal/repository"
)

type TweetService struct {
	tweetRepo repository.TweetRepository
	mediaRepo repository.MediaRepository
	likeRepo  repository.LikeRepository
	media     *MediaService
}

func NewTweetService(
	tweetRepo repository.TweetRepository,
	mediaRepo repository.MediaRepository,
	likeRepo repository.LikeRepository,
	media *MediaService,
) *TweetService {
	return &TweetService{
		tweetRepo: tweetRepo,
		mediaRepo: mediaRepo,
		likeRepo:  likeRepo,
		media:     media,
	}
}

// Create posts a new tweet for the author and links the referenced media
// records to it.
func (s *TweetService) Create(ctx context.Context, authorID int64, req model.CreateTweetRequest) (int64, error) {
	content := strings.TrimSpace(req.TweetData)
	if content == "" {
		return 0, model.ErrEmptyContent
	}

	return s.tweetRepo.Create(ctx, authorID, content, req.TweetMediaIDs)
}

// Update replaces a tweet's content. Only the author may update it.
func (s *TweetService) Update(ctx context.Context, tweetID, actorID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.ErrEmptyContent
	}

	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.UserID != actorID {
		return model.ErrNotTweetOwner
	}

	return s.tweetRepo.Update(ctx, tweetID, content)
}

// Delete removes a tweet. Only the author may delete it. Like and media
// rows go with the tweet via the schema cascade; the backing blobs are then
// removed best-effort so a missing file never fails the delete.
func (s *TweetService) Delete(ctx context.Context, tweetID, actorID int64) error {
	tweet, err := s.tweetRepo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.UserID != actorID {
		return model.ErrNotTweetOwner
	}

	paths, err := s.mediaRepo.GetPathsByTweet(ctx, tweetID)
	if err != nil {
		return err
	}

	if err := s.tweetRepo.Delete(ctx, tweetID); err != nil {
		return err
	}

	for _, path := range paths {
		log.Println(s.media.DeleteFile(ctx, path))
	}

	return nil
}

// Like records that the user likes the tweet. The tweet must exist; a
// second like of the same tweet by the same user is a conflict.
func (s *TweetService) Like(ctx context.Context, userID, tweetID int64) error {
	if _, err := s.tweetRepo.GetByID(ctx, tweetID); err != nil {
		return err
	}

	return s.likeRepo.Create(ctx, userID, tweetID)
}

// Unlike removes the user's like. Removing a like that does not exist is a
// no-op success.
func (s *TweetService) Unlike(ctx context.Context, userID, tweetID int64) error {
	return s.likeRepo.Delete(ctx, userID, tweetID)
}
