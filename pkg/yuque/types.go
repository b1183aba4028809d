package yuque

// User is the summary of a user or group returned in listings.
// https://www.yuque.com/yuque/developer/userserializer
type User struct {
	ID          int64    `json:"id" yaml:"id"`
	Type        UserType `json:"type" yaml:"type"`
	Login       string   `json:"login" yaml:"login"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	AvatarURL   string   `json:"avatar_url" yaml:"avatar_url"`
	CreatedAt   Time     `json:"created_at" yaml:"created_at"`
	UpdatedAt   Time     `json:"updated_at" yaml:"updated_at"`
}

// UserDetail is the full profile of a user or group.
// https://www.yuque.com/yuque/developer/userdetailserializer
type UserDetail struct {
	ID        int64    `json:"id" yaml:"id"`
	SpaceID   int64    `json:"space_id" yaml:"space_id"`
	AccountID int64    `json:"account_id" yaml:"account_id"`
	Type      UserType `json:"type" yaml:"type"`
	Login     string   `json:"login" yaml:"login"`
	Name      string   `json:"name" yaml:"name"`

	// OwnerID is the creator of a group; zero for users.
	OwnerID int64 `json:"owner_id" yaml:"owner_id"`

	AvatarURL        string `json:"avatar_url" yaml:"avatar_url"`
	BooksCount       int    `json:"books_count" yaml:"books_count"`
	PublicBooksCount int    `json:"public_books_count" yaml:"public_books_count"`
	MembersCount     int    `json:"members_count" yaml:"members_count"`
	Description      string `json:"description" yaml:"description"`
	CreatedAt        Time   `json:"created_at" yaml:"created_at"`
	UpdatedAt        Time   `json:"updated_at" yaml:"updated_at"`
}

// Repo is a repository summary ("book" in API terms).
// https://www.yuque.com/yuque/developer/bookserializer
type Repo struct {
	ID   int64    `json:"id" yaml:"id"`
	Type RepoKind `json:"type" yaml:"type"`
	Slug string   `json:"slug" yaml:"slug"`
	Name string   `json:"name" yaml:"name"`

	// Namespace is the full path: user.login/book.slug.
	Namespace string `json:"namespace" yaml:"namespace"`

	UserID       int64      `json:"user_id" yaml:"user_id"`
	User         *User      `json:"user,omitempty" yaml:"user,omitempty"`
	Description  string     `json:"description" yaml:"description"`
	CreatorID    int64      `json:"creator_id" yaml:"creator_id"`
	Public       Visibility `json:"public" yaml:"public"`
	LikesCount   int        `json:"likes_count" yaml:"likes_count"`
	WatchesCount int        `json:"watches_count" yaml:"watches_count"`
	CreatedAt    Time       `json:"created_at" yaml:"created_at"`
	UpdatedAt    Time       `json:"updated_at" yaml:"updated_at"`
}

// RepoDetail adds the table of contents and item count to Repo.
// https://www.yuque.com/yuque/developer/bookdetailserializer
type RepoDetail struct {
	Repo `yaml:",inline"`

	TocYML     string `json:"toc_yml" yaml:"toc_yml"`
	ItemsCount int    `json:"items_count" yaml:"items_count"`
}

// Doc is a document summary, used in listings.
// https://www.yuque.com/yuque/developer/docserializer
type Doc struct {
	ID     int64  `json:"id" yaml:"id"`
	Slug   string `json:"slug" yaml:"slug"`
	Title  string `json:"title" yaml:"title"`
	UserID int64  `json:"user_id" yaml:"user_id"`
	Format Format `json:"format" yaml:"format"`

	Public Visibility `json:"public" yaml:"public"`
	Status Status     `json:"status" yaml:"status"`

	LikesCount       int   `json:"likes_count" yaml:"likes_count"`
	CommentsCount    int   `json:"comments_count" yaml:"comments_count"`
	ContentUpdatedAt Time  `json:"content_updated_at" yaml:"content_updated_at"`
	Book             *Repo `json:"book,omitempty" yaml:"book,omitempty"`
	User             *User `json:"user,omitempty" yaml:"user,omitempty"`
	LastEditor       *User `json:"last_editor,omitempty" yaml:"last_editor,omitempty"`
	CreatedAt        Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt        Time  `json:"updated_at" yaml:"updated_at"`
}

// DocDetail is a full document including its body.
// https://www.yuque.com/yuque/developer/docdetailserializer
type DocDetail struct {
	ID     int64  `json:"id" yaml:"id"`
	Slug   string `json:"slug" yaml:"slug"`
	Title  string `json:"title" yaml:"title"`
	BookID int64  `json:"book_id" yaml:"book_id"`
	Book   *Repo  `json:"book,omitempty" yaml:"book,omitempty"`
	UserID int64  `json:"user_id" yaml:"user_id"`
	User   *User  `json:"user,omitempty" yaml:"user,omitempty"`
	Format Format `json:"format" yaml:"format"`

	// Body is the source in Format; BodyDraft the unpublished draft.
	Body      string `json:"body" yaml:"body"`
	BodyDraft string `json:"body_draft" yaml:"body_draft"`
	BodyHTML  string `json:"body_html" yaml:"body_html"`
	BodyLake  string `json:"body_lake,omitempty" yaml:"body_lake,omitempty"`

	CreatorID        int64      `json:"creator_id" yaml:"creator_id"`
	Public           Visibility `json:"public" yaml:"public"`
	Status           Status     `json:"status" yaml:"status"`
	LikesCount       int        `json:"likes_count" yaml:"likes_count"`
	CommentsCount    int        `json:"comments_count" yaml:"comments_count"`
	ContentUpdatedAt Time       `json:"content_updated_at" yaml:"content_updated_at"`

	// DeletedAt is zero unless the document was deleted.
	DeletedAt Time `json:"deleted_at" yaml:"deleted_at"`
	CreatedAt Time `json:"created_at" yaml:"created_at"`
	UpdatedAt Time `json:"updated_at" yaml:"updated_at"`
}

// GroupUser is a group membership.
// https://www.yuque.com/yuque/developer/groupuserserializer
type GroupUser struct {
	ID        int64 `json:"id" yaml:"id"`
	GroupID   int64 `json:"group_id" yaml:"group_id"`
	Group     *User `json:"group,omitempty" yaml:"group,omitempty"`
	UserID    int64 `json:"user_id" yaml:"user_id"`
	User      *User `json:"user,omitempty" yaml:"user,omitempty"`
	Role      Role  `json:"role" yaml:"role"`
	CreatedAt Time  `json:"created_at" yaml:"created_at"`
	UpdatedAt Time  `json:"updated_at" yaml:"updated_at"`
}

// RemovedGroupUser is returned when a member is removed from a group.
type RemovedGroupUser struct {
	UserID int64 `json:"user_id" yaml:"user_id"`
}

// Recent is the result of a recently-updated listing. Exactly one of Docs or
// Repos is populated, depending on Kind.
type Recent struct {
	Kind  RecentKind `json:"kind" yaml:"kind"`
	Docs  []Doc      `json:"docs,omitempty" yaml:"docs,omitempty"`
	Repos []Repo     `json:"repos,omitempty" yaml:"repos,omitempty"`
}
