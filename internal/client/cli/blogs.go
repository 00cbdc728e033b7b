package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/acmchapter/chapterdesk/internal/client/api"
	"github.com/acmchapter/chapterdesk/internal/client/forms"
	"github.com/acmchapter/chapterdesk/internal/client/markup"
	"github.com/acmchapter/chapterdesk/internal/client/models"
)

func (a *App) newBlogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blogs",
		Short: "Read and write chapter blog posts",
	}

	manage := []*cobra.Command{
		a.newBlogsMineCmd(),
		a.newBlogsAdminCmd(),
		a.newBlogsWriteCmd(),
		a.newBlogsEditCmd(),
		a.newBlogsDeleteCmd(),
	}
	a.guard(manage...)

	cmd.AddCommand(a.newBlogsListCmd(), a.newBlogsShowCmd())
	cmd.AddCommand(manage...)
	return cmd
}

func (a *App) newBlogsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List published posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListBlogs(cmd.Context(), search)
			if err != nil {
				return err
			}
			a.out.Blogs(list)
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "server-side search")
	return cmd
}

func (a *App) newBlogsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <blog-id>",
		Short: "Read a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.findBlog(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a.out.Blog(b)
			return nil
		},
	}
}

// findBlog picks a post out of the listing; the API has no single-post read.
func (a *App) findBlog(ctx context.Context, id string) (models.Blog, error) {
	want, err := strconv.Atoi(id)
	if err != nil {
		return models.Blog{}, forms.ValidationErrors{fmt.Sprintf("blog id must be a number, got %q", id)}
	}
	list, err := a.api.ListBlogs(ctx, "")
	if err != nil {
		return models.Blog{}, err
	}
	for _, b := range list {
		if b.ID == want {
			return b, nil
		}
	}
	return models.Blog{}, fmt.Errorf("blog %d: %w", want, api.ErrNotFound)
}

func (a *App) newBlogsMineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mine",
		Short: "List your own posts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListBlogs(cmd.Context(), "")
			if err != nil {
				return err
			}
			a.out.Blogs(ownBlogs(list, a.session.Current().UserID))
			return nil
		},
	}
}

func ownBlogs(list []models.Blog, userID string) []models.Blog {
	out := make([]models.Blog, 0, len(list))
	for _, b := range list {
		if userID != "" && strconv.Itoa(b.CreatedBy.ID) == userID {
			out = append(out, b)
		}
	}
	return out
}

func (a *App) newBlogsAdminCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "admin",
		Short: "List every post with its author for moderation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.api.ListBlogs(cmd.Context(), search)
			if err != nil {
				return err
			}
			a.out.Title("All posts")
			a.out.Blogs(list)
			a.out.Note(fmt.Sprintf("%d post(s). Remove one with `blogs delete <id>`.", len(list)))
			return nil
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "server-side search")
	return cmd
}

// blogFlags binds the write/edit form. file is a Markdown file; relative
// image paths inside it resolve against its directory.
func blogFlags(cmd *cobra.Command, f *forms.Blog, file *string) {
	fl := cmd.Flags()
	fl.StringVar(&f.Title, "title", "", "post title")
	fl.StringVar(file, "file", "", "read the Markdown body from this file")
	fl.StringVar(&f.Cover, "cover", "", "cover image path")
}

// readBody takes the body from file when given, otherwise from the terminal.
func (a *App) readBody(file string) (body, baseDir string, err error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", "", fmt.Errorf("read %s: %w", file, err)
		}
		return string(data), filepath.Dir(file), nil
	}
	body, err = getMultiline(a.reader, "Write the post in Markdown", a.out.Writer())
	return body, "", err
}

// renderBody uploads local images referenced by body, rewrites them to the
// returned URLs and renders the result to HTML.
func (a *App) renderBody(ctx context.Context, body, baseDir string) (string, error) {
	local := markup.LocalImages(body)
	urls := make(map[string]string, len(local))
	for _, dest := range local {
		path := dest
		if baseDir != "" && !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", forms.ValidationErrors{fmt.Sprintf("image %s not found", dest)}
		}
		url, err := a.api.UploadInlineImage(ctx, path)
		if err != nil {
			return "", fmt.Errorf("upload %s: %w", dest, err)
		}
		a.log.Debug(ctx, "inline image uploaded", "path", path, "url", url)
		urls[dest] = url
	}
	return markup.ToHTML(markup.ReplaceImages(body, urls))
}

func (a *App) newBlogsWriteCmd() *cobra.Command {
	var (
		f    forms.Blog
		file string
	)

	cmd := &cobra.Command{
		Use:   "write",
		Short: "Publish a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			var err error
			if f.Title, err = a.ask(f.Title, "Title"); err != nil {
				return err
			}
			body, baseDir, err := a.readBody(file)
			if err != nil {
				return err
			}
			f.Body = body
			if err := f.Validate(); err != nil {
				return err
			}

			html, err := a.renderBody(ctx, f.Body, baseDir)
			if err != nil {
				return err
			}
			b, err := a.api.CreateBlog(ctx, api.BlogDraft{Title: f.Title, Content: html, Cover: f.Cover})
			if err != nil {
				return err
			}
			a.out.Success(fmt.Sprintf("Published %q (id %d).", b.Title, b.ID))
			return nil
		},
	}
	blogFlags(cmd, &f, &file)
	return cmd
}

// newBlogsEditCmd keeps the current title and body unless replacements are
// given.
func (a *App) newBlogsEditCmd() *cobra.Command {
	var (
		f    forms.Blog
		file string
	)

	cmd := &cobra.Command{
		Use:   "edit <blog-id>",
		Short: "Edit one of your posts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cur, err := a.findBlog(ctx, args[0])
			if err != nil {
				return err
			}
			if f.Title == "" {
				f.Title = cur.Title
			}

			content := cur.Content
			if file != "" {
				body, baseDir, err := a.readBody(file)
				if err != nil {
					return err
				}
				if content, err = a.renderBody(ctx, body, baseDir); err != nil {
					return err
				}
			}
			f.Body = content
			if err := f.Validate(); err != nil {
				return err
			}

			if _, err := a.api.UpdateBlog(ctx, args[0], api.BlogDraft{Title: f.Title, Content: f.Body, Cover: f.Cover}); err != nil {
				return err
			}
			a.out.Success("Post updated.")
			return nil
		},
	}
	blogFlags(cmd, &f, &file)
	return cmd
}

func (a *App) newBlogsDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <blog-id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.confirmDelete(yes, "blog "+args[0], func() error {
				return a.api.DeleteBlog(cmd.Context(), args[0])
			})
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "do not ask for confirmation")
	return cmd
}
