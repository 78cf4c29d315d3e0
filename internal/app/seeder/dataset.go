package seeder

import (
	"time"

	"github.com/graymanconcepts/prompt-manager/internal/domain"
)

func day(d int) time.Time {
	return time.Date(2023, time.January, d, 12, 0, 0, 0, time.UTC)
}

func ref(s string) *string { return &s }

// StarterHistory returns the built-in upload batches. The study batch ships
// disabled so a fresh install shows the batch filter at work.
func StarterHistory() []domain.UploadHistory {
	return []domain.UploadHistory{
		{ID: "1", FileName: "writing_prompts.txt", UploadDate: day(1), Status: domain.UploadStatusSuccess, IsActive: true, PromptCount: 1},
		{ID: "2", FileName: "coding_prompts.txt", UploadDate: day(2), Status: domain.UploadStatusSuccess, IsActive: true, PromptCount: 1},
		{ID: "3", FileName: "study_prompts.txt", UploadDate: day(3), Status: domain.UploadStatusSuccess, IsActive: false, PromptCount: 1},
	}
}

// StarterPrompts returns the built-in prompts, each linked to the batch of
// the same number.
func StarterPrompts() []domain.Prompt {
	return []domain.Prompt{
		{
			ID:           "1",
			Title:        "Creative Writing Assistant",
			Description:  "AI prompt for creative writing assistance",
			Content:      "You are a creative writing assistant. Help the user develop their story ideas, characters, and plot points. Provide constructive feedback and suggestions.",
			Tags:         []string{"writing", "creative", "story"},
			Created:      day(1),
			LastModified: day(1),
			IsActive:     true,
			HistoryID:    ref("1"),
		},
		{
			ID:           "2",
			Title:        "Code Review Expert",
			Description:  "AI prompt for code review assistance",
			Content:      "You are a code review expert. Review the provided code for best practices, potential bugs, and performance issues. Suggest improvements and explain your reasoning.",
			Tags:         []string{"coding", "review", "programming"},
			Created:      day(2),
			LastModified: day(2),
			IsActive:     true,
			HistoryID:    ref("2"),
		},
		{
			ID:           "3",
			Title:        "Study Guide Creator",
			Description:  "AI prompt for creating study guides",
			Content:      "You are a study guide creator. Help students create comprehensive study guides for their subjects. Break down complex topics and provide examples.",
			Tags:         []string{"education", "study", "learning"},
			Created:      day(3),
			LastModified: day(3),
			IsActive:     false,
			HistoryID:    ref("3"),
		},
	}
}
