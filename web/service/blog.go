package service

import (
	"errors"
	"time"

	"github.com/evolvo-uz/evolvo/database"
	"github.com/evolvo-uz/evolvo/database/model"
)

// ErrSlugTaken is returned when creating a post whose slug already exists.
var ErrSlugTaken = errors.New("slug already taken")

// BlogService manages bilingual blog posts.
type BlogService struct{}

// GetPublishedPosts lists posts visible on the public site, newest first.
func (s *BlogService) GetPublishedPosts() ([]*model.BlogPost, error) {
	db := database.GetDB()
	var posts []*model.BlogPost
	err := db.Model(model.BlogPost{}).
		Where("published = ?", true).
		Order("published_at desc").
		Find(&posts).
		Error
	return posts, err
}

func (s *BlogService) GetPostBySlug(slug string) (*model.BlogPost, error) {
	db := database.GetDB()
	post := &model.BlogPost{}
	err := db.Model(model.BlogPost{}).
		Where("slug = ? AND published = ?", slug, true).
		First(post).
		Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetAllPosts lists every post, drafts included, for the back-office.
func (s *BlogService) GetAllPosts() ([]*model.BlogPost, error) {
	db := database.GetDB()
	var posts []*model.BlogPost
	err := db.Model(model.BlogPost{}).Order("id desc").Find(&posts).Error
	return posts, err
}

func (s *BlogService) GetPost(id int) (*model.BlogPost, error) {
	db := database.GetDB()
	post := &model.BlogPost{}
	err := db.Model(model.BlogPost{}).First(post, id).Error
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) AddPost(post *model.BlogPost) error {
	db := database.GetDB()

	var count int64
	if err := db.Model(model.BlogPost{}).Where("slug = ?", post.Slug).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrSlugTaken
	}

	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return db.Create(post).Error
}

func (s *BlogService) UpdatePost(post *model.BlogPost) error {
	db := database.GetDB()
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	return db.Save(post).Error
}

func (s *BlogService) DeletePost(id int) error {
	db := database.GetDB()
	return db.Delete(&model.BlogPost{}, id).Error
}
