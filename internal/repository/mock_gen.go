// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./repository.go -destination=../mocks/mock_transaction.go -package=mocks Transaction
//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./idea.go -destination=../mocks/mock_idea_repository.go -package=mocks IdeaRepositoryIface
//go:generate mockgen -source=./comment.go -destination=../mocks/mock_comment_repository.go -package=mocks CommentRepositoryIface
