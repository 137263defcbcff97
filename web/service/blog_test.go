package service

import (
	"testing"

	"github.com/evolvo-uz/evolvo/database/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService(t *testing.T) {
	setup(t)
	defer teardown()

	svc := BlogService{}

	post := &model.BlogPost{
		Slug:      "ai-in-retail",
		TitleUz:   "Chakana savdoda AI",
		TitleEn:   "AI in retail",
		Published: true,
	}
	require.NoError(t, svc.AddPost(post))
	require.NotNil(t, post.PublishedAt)

	draft := &model.BlogPost{Slug: "draft-post", TitleUz: "Qoralama", TitleEn: "Draft"}
	require.NoError(t, svc.AddPost(draft))

	// Duplicate slugs are rejected.
	dup := &model.BlogPost{Slug: "ai-in-retail", TitleUz: "x", TitleEn: "x"}
	assert.ErrorIs(t, svc.AddPost(dup), ErrSlugTaken)

	published, err := svc.GetPublishedPosts()
	require.NoError(t, err)
	assert.Len(t, published, 1)

	got, err := svc.GetPostBySlug("ai-in-retail")
	require.NoError(t, err)
	assert.Equal(t, post.Id, got.Id)

	_, err = svc.GetPostBySlug("draft-post")
	assert.Error(t, err)

	all, err := svc.GetAllPosts()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	draft.Published = true
	require.NoError(t, svc.UpdatePost(draft))
	updated, err := svc.GetPost(draft.Id)
	require.NoError(t, err)
	assert.True(t, updated.Published)
	assert.NotNil(t, updated.PublishedAt)

	require.NoError(t, svc.DeletePost(post.Id))
	_, err = svc.GetPost(post.Id)
	assert.Error(t, err)
}
