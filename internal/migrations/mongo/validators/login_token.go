package validators

import "go.mongodb.org/mongo-driver/bson"

var LoginTokenValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"token",
			"user_id",
			"validity",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"token": bson.M{
				"bsonType":  "string",
				"minLength": 16,
				"maxLength": 512,
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"validity": bson.M{
				"bsonType": "date",
			},
		},
	},
}
