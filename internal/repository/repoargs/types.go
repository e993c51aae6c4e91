package repoargs

type RepositoryName string

const (
	UserRepoName  RepositoryName = "user"
	StoreRepoName RepositoryName = "store"
	BookRepoName  RepositoryName = "book"
	OrderRepoName RepositoryName = "order"
)

// BatchExecQueryRow колбек результата батч запроса: i - индекс элемента батча.
type BatchExecQueryRow func(i int, err error)
