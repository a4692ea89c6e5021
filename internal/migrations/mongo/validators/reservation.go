package validators

import "go.mongodb.org/mongo-driver/bson"

var ReservationValidator = bson.M{
	"$jsonSchema": bson.M{
		"bsonType": "object",
		"required": []string{
			"reservation_number",
			"user_id",
			"reservation_date",
			"flights",
			"total_price",
			"is_confirmed",
		},
		"additionalProperties": true,

		"properties": bson.M{
			"_id": bson.M{
				"bsonType": "objectId",
			},

			"reservation_number": bson.M{
				"bsonType":  "string",
				"minLength": 6,
				"maxLength": 6,
				"pattern":   "^[A-Z0-9]{6}$",
			},

			"user_id": bson.M{
				"bsonType":  "string",
				"minLength": 24,
				"maxLength": 24,
			},

			"reservation_date": bson.M{
				"bsonType": "date",
			},

			"flights": bson.M{
				"bsonType": "array",
				"minItems": 1,
				"items": bson.M{
					"bsonType": "object",
					"required": []string{"flight_id", "price", "passengers"},
					"properties": bson.M{
						"flight_id": bson.M{
							"bsonType":  "string",
							"minLength": 24,
							"maxLength": 24,
						},
						"price": bson.M{
							"bsonType": []string{"double", "int", "long", "decimal"},
							"minimum":  0,
						},
						"passengers": bson.M{
							"bsonType": "array",
							"items": bson.M{
								"bsonType": "object",
								"required": []string{"type", "first_name", "last_name", "dob"},
								"properties": bson.M{
									"type": bson.M{
										"bsonType": "string",
										"enum": []string{
											"adult",
											"child",
											"infant",
										},
									},
									"first_name": bson.M{
										"bsonType":  "string",
										"minLength": 1,
										"maxLength": 60,
									},
									"last_name": bson.M{
										"bsonType":  "string",
										"minLength": 1,
										"maxLength": 60,
									},
									"dob": bson.M{
										"bsonType": "date",
									},
									"hand_baggage": bson.M{
										"bsonType": []string{"int", "long"},
										"minimum":  0,
									},
									"checked_baggage": bson.M{
										"bsonType": []string{"int", "long"},
										"minimum":  0,
									},
									"seat": bson.M{
										"bsonType": "string",
									},
									"is_checked_in": bson.M{
										"bsonType": "bool",
									},
								},
							},
						},
					},
				},
			},

			"total_price": bson.M{
				"bsonType": []string{"double", "int", "long", "decimal"},
				"minimum":  0,
			},

			"is_confirmed": bson.M{
				"bsonType": "bool",
			},
		},
	},
}
