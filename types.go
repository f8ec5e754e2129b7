package showcase

import "time"

// Collection names one of the two article partitions in the document store.
type Collection string

const (
	// CollectionBlog holds blog posts.
	CollectionBlog Collection = "blogPosts"
	// CollectionProjects holds portfolio projects.
	CollectionProjects Collection = "projects"
)

// Valid reports whether c is one of the known collections.
func (c Collection) Valid() bool {
	return c == CollectionBlog || c == CollectionProjects
}

// Label returns the human-readable kind of content the collection holds.
func (c Collection) Label() string {
	if c == CollectionProjects {
		return "Project"
	}
	return "Blog Post"
}

// Article is the core content type stored in MongoDB and rendered by templates.
// ID is assigned by the store on create and is empty before that. Date is the
// sole sort key (descending); it is kept as a real timestamp and only
// formatted for display.
type Article struct {
	ID          string    `bson:"-"`
	Title       string    `bson:"title"`
	Summary     string    `bson:"summary"`
	FullContent string    `bson:"fullContent"`
	ImageURL    string    `bson:"imageUrl"`
	Author      string    `bson:"author"`
	Category    string    `bson:"category,omitempty"`
	Date        time.Time `bson:"date"`
}

// DisplayDate renders the article date the way the site shows it ("Jan 2, 2006").
func (a Article) DisplayDate() string {
	if a.Date.IsZero() {
		return ""
	}
	return a.Date.Format("Jan 2, 2006")
}
