package directory

import (
	"fmt"

	"github.com/SSebia/adsite-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderListings renders the filtered directory as a card per listing.
func RenderListings(listings []domain.Listing) string {
	return renderListings(listings, newStyles())
}

// RenderThread renders a comment thread, already ordered most-recent-first.
func RenderThread(listing domain.Listing, comments []domain.Comment) string {
	return renderThread(listing, comments, newStyles())
}

// RenderCategories renders the category directory one line per category.
func RenderCategories(categories []domain.Category) string {
	return renderCategories(categories, newStyles())
}

func renderListings(listings []domain.Listing, s styles) string {
	lines := []string{
		s.title.Render("Ad Site"),
		s.header.Render(fmt.Sprintf("listings: %d", len(listings))),
	}

	if len(listings) == 0 {
		lines = append(lines, s.empty.Render("No listings match."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, listing := range listings {
		lines = append(lines, s.section.Render(renderListing(listing, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderListing(listing domain.Listing, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.listing.Render(fmt.Sprintf("#%d %s", listing.ID, listing.Title)),
		" ",
		s.category.Render(listing.Category.Name),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		s.price.Render(fmt.Sprintf("%d$", listing.Price))+" "+s.category.Render(listing.City),
		s.detail.Render(listing.Description),
	)
}

func renderThread(listing domain.Listing, comments []domain.Comment, s styles) string {
	lines := []string{
		s.title.Render(listing.Title),
		s.category.Render(listing.Category.Name),
		s.detail.Render(listing.Description),
	}

	if len(comments) == 0 {
		lines = append(lines, s.section.Render(s.empty.Render("No comments yet.")))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	thread := make([]string, 0, len(comments))
	for _, comment := range comments {
		thread = append(thread, lipgloss.JoinVertical(
			lipgloss.Left,
			s.author.Render(comment.Author),
			s.detail.Render(comment.Text),
			s.divider.Render("---"),
		))
	}
	lines = append(lines, s.section.Render(lipgloss.JoinVertical(lipgloss.Left, thread...)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderCategories(categories []domain.Category, s styles) string {
	lines := []string{
		s.title.Render("Categories"),
		s.header.Render(fmt.Sprintf("categories: %d", len(categories))),
	}

	if len(categories) == 0 {
		lines = append(lines, s.empty.Render("No categories available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, category := range categories {
		lines = append(lines, s.detail.Render(fmt.Sprintf("%d\t%s", category.ID, category.Name)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
