package validators

import "go.mongodb.org/mongo-driver/bson"

var BasketValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"user_id",
			"flights",
			"expiry_time",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"flights": bson.M{
				"bsonType": "array",
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"flight_id", "adult", "child", "infant", "unit_price"},
					"properties": bson.M{
						"flight_id": bson.M{
							"bsonType":  "string",
							"minLength": 24,
							"maxLength": 24,
						},
						"adult": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  0,
						},
						"child": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  0,
						},
						"infant": bson.M{
							"bsonType": []string{"int", "long"},
							"minimum":  0,
						},
						"unit_price": bson.M{
							"bsonType": []string{"double", "int", "long", "decimal"},
							"minimum":  0,
						},
					},
				},
			},

			"expiry_time": bson.M{
				"bsonType": "date",
			},

			"created_at": bson.M{
				"bsonType": "date",
			},
		},
	},
}
