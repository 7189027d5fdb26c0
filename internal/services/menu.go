package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nizs/delizia-server/internal/models"
	"github.com/nizs/delizia-server/internal/storage"
)

// ListMenu returns the whole menu
func ListMenu(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := menuCollection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.MenuItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetMenuItem fetches one menu item by id. A missing document yields a nil
// item, not an error.
func GetMenuItem(ctx context.Context, id string) (*models.MenuItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	var item models.MenuItem
	err = menuCollection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// AddMenuItem inserts a new menu item
func AddMenuItem(ctx context.Context, item models.MenuItem) (*mongo.InsertOneResult, error) {
	return menuCollection.InsertOne(ctx, item)
}

// UpdateMenuItem overwrites the editable fields of a menu item
func UpdateMenuItem(ctx context.Context, id string, item models.MenuItem) (*mongo.UpdateResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{
		"name":     item.Name,
		"recipe":   item.Recipe,
		"image":    item.Image,
		"category": item.Category,
		"price":    item.Price,
	}}
	return menuCollection.UpdateOne(ctx, bson.M{"_id": objID}, update)
}

// DeleteMenuItem removes a menu item by id
func DeleteMenuItem(ctx context.Context, id string) (*mongo.DeleteResult, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	return menuCollection.DeleteOne(ctx, bson.M{"_id": objID})
}

// UploadMenuImage stores the multipart "image" file in object storage and
// points the menu document's image field at it. The object upload and the
// document update run in parallel; if the update fails the uploaded object
// is removed again so storage doesn't accumulate orphans.
func UploadMenuImage(c *fiber.Ctx, id string) (string, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return "", fmt.Errorf("invalid menu id: %w", err)
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return "", errors.New("failed to retrieve image")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", errors.New("failed to open image")
	}
	defer file.Close()

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("failed to read image")
	}

	objectName := fmt.Sprintf("%s_%s", id, fileHeader.Filename)
	imageURL := fmt.Sprintf("http://%s/%s/%s", os.Getenv("MINIO_ENDPOINT"), storage.MenuImageBucket, objectName)

	uploadResultChan := make(chan error, 1)
	updateResultChan := make(chan error, 1)

	// Both goroutines are awaited below, so the request context outlives them
	ctx := c.Context()

	go func() {
		_, err := storage.MinioClient.PutObject(
			ctx,
			storage.MenuImageBucket,
			objectName,
			bytes.NewReader(imageBytes),
			int64(len(imageBytes)),
			minio.PutObjectOptions{ContentType: fileHeader.Header.Get("Content-Type")},
		)
		uploadResultChan <- err
	}()

	go func() {
		_, err := menuCollection.UpdateOne(
			ctx,
			bson.M{"_id": objID},
			bson.M{"$set": bson.M{"image": imageURL}},
		)
		updateResultChan <- err
	}()

	uploadErr := <-uploadResultChan
	updateErr := <-updateResultChan

	if uploadErr != nil {
		return "", errors.New("failed to upload image to storage: " + uploadErr.Error())
	}

	if updateErr != nil {
		// Clean up the uploaded object if the document update fails
		go func() {
			storage.MinioClient.RemoveObject(context.Background(), storage.MenuImageBucket, objectName, minio.RemoveObjectOptions{})
		}()
		return "", errors.New("failed to save image reference: " + updateErr.Error())
	}

	return imageURL, nil
}
