package service

import (
	"context"

	"microtwit/internal/model"
	"microtwit/internal/repository"
)

type FeedService struct {
	tweetRepo repository.TweetRepository
}

func NewFeedService(tweetRepo repository.TweetRepository) *FeedService {
	return &FeedService{tweetRepo: tweetRepo}
}

// GetFeed assembles the like-ranked tweet listing.
//
// Flow:
//  1. One aggregate read: tweets joined to author, first media url and like
//     count, ordered by like count descending (tweet id descending on ties).
//  2. One batched read: the full liker list for every returned tweet,
//     keyed by tweet id.
//  3. Assemble feed items: author {id, name}, attachments (the single media
//     url when present), likes as {user_id, name} pairs.
//
// The listing is global: every tweet in the system is ranked, regardless of
// the viewer's follow graph. viewerID is part of the contract but does not
// influence the result.
func (s *FeedService) GetFeed(ctx context.Context, viewerID int64) (*model.FeedResponse, error) {
	rows, err := s.tweetRepo.GetRanked(ctx)
	if err != nil {
		return nil, err
	}

	tweetIDs := make([]int64, len(rows))
	for i, row := range rows {
		tweetIDs[i] = row.ID
	}

	likers, err := s.tweetRepo.GetLikersByTweetIDs(ctx, tweetIDs)
	if err != nil {
		return nil, err
	}

	tweets := make([]model.FeedTweet, len(rows))
	for i, row := range rows {
		attachments := []string{}
		if row.MediaURL != "" {
			attachments = append(attachments, row.MediaURL)
		}

		likes := likers[row.ID]
		if likes == nil {
			likes = []model.Liker{}
		}

		tweets[i] = model.FeedTweet{
			ID:          row.ID,
			Content:     row.Content,
			Author:      model.UserSummary{ID: row.UserID, Name: row.UserName},
			Attachments: attachments,
			Likes:       likes,
		}
	}

	return &model.FeedResponse{Result: true, Tweets: tweets}, nil
}
