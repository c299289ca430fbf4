package mocks

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Repository --dir ../domain/admin --output domain/admin --outpkg adminmock --filename repository_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/cricket --output domain/cricket --outpkg cricketmock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Provider --dir ../domain/player --output domain/player --outpkg playermock --filename provider_mock.go
//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name Backend --dir ../domain/prediction --output domain/prediction --outpkg predictionmock --filename backend_mock.go
